// Package sheet provides access to the survey workbook snapshot.
//
// The workbook (an xlsx file) lives as a single object in S3-compatible
// storage. The Client interface wraps the Minio operations the package needs;
// Workbook layers excelize on top of it to expose row-level reads for the
// reconciliation engine and row-level writes for direct single-record edits.
//
// Reads are idempotent: each call downloads the current snapshot. Writes
// download, mutate and re-upload the whole object, which is acceptable because
// the sink is only used by low-volume direct edits, never by bulk
// reconciliation.
package sheet
