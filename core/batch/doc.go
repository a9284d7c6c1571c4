// Package batch provides the bounded-time transactional chunk executor used by
// the reconciliation engine.
//
// An Executor splits a record range into fixed-size chunks and runs each chunk
// inside its own database transaction. A wall-clock deadline is checked between
// chunks, never mid-chunk: a chunk that starts is allowed to finish or fail as
// a unit. When the deadline passes, the executor stops scheduling new chunks
// and reports a truncated outcome with the remaining record count. Truncation
// is partial completion, not an error; callers re-invoke to continue.
//
// A chunk whose transaction fails to commit has all of its records counted as
// errors, and the run proceeds to the next chunk.
package batch
