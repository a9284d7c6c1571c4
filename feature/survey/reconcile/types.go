package reconcile

import (
	"fmt"
	"time"
)

// Mode selects the reconciliation strategy. The strategies share one engine;
// they differ only in which delete phases run and how rows are windowed.
type Mode string

const (
	// ModeFull reconciles the entire snapshot and deletes persisted records
	// absent from it.
	ModeFull Mode = "full"
	// ModeIncremental creates and updates from the entire snapshot and deletes
	// only orphaned summaries; master records are never deleted.
	ModeIncremental Mode = "incremental"
	// ModeBatched processes one bounded window of the snapshot per invocation,
	// selected by batch number. No deletes run.
	ModeBatched Mode = "batched"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeIncremental, ModeBatched:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid sync mode %q", s)
	}
}

// Options configures one reconciliation run.
type Options struct {
	// Mode selects the strategy.
	Mode Mode
	// BatchSize is the number of rows per transaction chunk.
	BatchSize int
	// BatchNumber selects the window in batched mode (zero-based).
	BatchNumber int
	// Deadline is the wall-clock budget for the whole run. Zero disables it.
	Deadline time.Duration
	// NameMatch enables the customer-name fallback during identity resolution.
	NameMatch bool
	// Source labels the run in the sync log (e.g. "http", "cli").
	Source string
}

// State is the lifecycle position of a run.
type State string

const (
	StateStarted           State = "STARTED"
	StateResolvingEnums    State = "RESOLVING_ENUMS"
	StateProcessingDetail  State = "PROCESSING_DETAIL"
	StateProcessingSummary State = "PROCESSING_SUMMARY"
	StateDeleting          State = "DELETING"
	StateCompleted         State = "COMPLETED"
	// StateTruncated is terminal but not an error: the deadline passed and
	// unprocessed records remain.
	StateTruncated State = "TRUNCATED_BY_TIMEOUT"
)

// Result reports what one run accomplished.
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`

	BatchesProcessed int `json:"batches_processed"`
	TotalRecords     int `json:"total_records"`
	ProcessedRecords int `json:"processed_records"`

	// Completed is false when the run was truncated by its deadline.
	// Callers detect the remaining count and may re-invoke to finish.
	Completed bool `json:"completed"`
	// MoreWindows reports that batched mode has further windows beyond this
	// invocation's; the counts above cover only the current window. Always
	// false in full and incremental modes.
	MoreWindows bool  `json:"more_windows"`
	State       State `json:"state"`
}

// Remaining returns the number of records never scheduled.
func (r *Result) Remaining() int {
	return r.TotalRecords - r.ProcessedRecords
}
