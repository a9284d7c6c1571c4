// Package survey exposes the survey-case API: reconciliation runs against the
// workbook snapshot, dashboard reads, direct status edits with write-through,
// the sync log and the schema integrity sweep.
package survey
