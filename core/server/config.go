package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncMode is the default reconciliation mode used when a sync request
	// does not specify one (full, incremental, batched).
	SyncMode string `mapstructure:"sync_mode" default:"incremental"`
	// SyncDeadlineSeconds is the wall-clock budget for a synchronous sync run.
	// Runs exceeding the budget stop between batches and report partial completion.
	SyncDeadlineSeconds int `mapstructure:"sync_deadline_seconds" default:"25"`
}

const (
	SyncModeFull        = "full"
	SyncModeIncremental = "incremental"
	SyncModeBatched     = "batched"
)

// IsValidSyncMode checks if the configured default sync mode is valid.
func (c Config) IsValidSyncMode() bool {
	switch c.SyncMode {
	case SyncModeFull, SyncModeIncremental, SyncModeBatched:
		return true
	default:
		return false
	}
}
