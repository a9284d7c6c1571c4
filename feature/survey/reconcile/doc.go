// Package reconcile synchronizes workbook row sets into the survey tables.
//
// A run normalizes both sheets, resolves every enum value up front, resolves
// summary identities against a snapshot of the persisted cases, deletes
// orphaned summaries, then upserts cases and summaries in transactional
// chunks under a wall-clock deadline. Hitting the deadline truncates the run
// without error; the caller re-invokes to finish.
package reconcile
