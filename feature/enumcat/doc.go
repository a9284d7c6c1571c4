// Package enumcat implements the dynamic enum catalog.
//
// Categorical fields on survey cases and contract summaries (installation
// status, proposal status, order type, ...) draw their values from domains
// that grow as new spreadsheet values appear. The Resolver maps a normalized
// (category, value) pair to a canonical catalog entry, creating the entry on
// first sight with a generated display label.
//
// # Concurrency
//
// The resolver carries an in-process read-through cache and collapses
// concurrent first-sight creations with singleflight. Races against other
// processes are tolerated via retry-on-unique-violation: when an insert loses,
// the winner's row is fetched and returned. The catalog is never locked.
//
// The reconciliation engine resolves every distinct pair of a run up front,
// before any transaction opens, so no catalog lookup ever extends a
// transactional block.
package enumcat
