// Package database provides the GORM/MySQL connection layer.
//
// Connect builds the DSN from the partial config, silences GORM's own logger,
// applies pool limits and verifies the connection with a bounded ping.
//
// The inspector helpers read raw column metadata (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite) so the integrity feature can verify the sync
// schema without relying on GORM migrations being up to date.
package database
