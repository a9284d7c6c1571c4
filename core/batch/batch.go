package batch

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultSize is the chunk size used when none is configured.
const DefaultSize = 50

// Counts aggregates per-record outcomes across chunks.
type Counts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// Add merges other into c.
func (c *Counts) Add(other Counts) {
	c.Created += other.Created
	c.Updated += other.Updated
	c.Deleted += other.Deleted
	c.Skipped += other.Skipped
	c.Errors += other.Errors
}

// Bump increments the counter named by action: "created", "updated",
// "deleted" or "skipped". Anything else counts as an error.
func (c *Counts) Bump(action string) {
	switch action {
	case "created":
		c.Created++
	case "updated":
		c.Updated++
	case "deleted":
		c.Deleted++
	case "skipped":
		c.Skipped++
	default:
		c.Errors++
	}
}

// Outcome reports what one executor run accomplished.
type Outcome struct {
	// Processed is the number of records attempted, including errored ones.
	Processed int
	// Remaining is the number of records never scheduled before the deadline.
	Remaining int
	// Batches is the number of chunks that ran.
	Batches int
	// Truncated reports whether the run stopped on its wall-clock deadline
	// (or context cancellation) with records remaining. Not an error state.
	Truncated bool
	// Counts holds the aggregated per-record outcomes.
	Counts Counts
}

// Fn processes the records in [start, end) inside the given transaction.
// Returning an error rolls the chunk back; the executor counts every record
// in the chunk as errored and continues with the next chunk.
type Fn func(tx *gorm.DB, start, end int) (Counts, error)

// Executor runs work over a record range in fixed-size transactional chunks
// under a wall-clock deadline.
type Executor struct {
	// BatchSize is the number of records per transaction.
	BatchSize int
	// Deadline is the wall-clock cutoff. Zero means no deadline.
	// It is checked between chunks only; a chunk that starts is allowed
	// to finish or fail as a unit.
	Deadline time.Time
}

// Run executes fn over total records in chunks.
func (e Executor) Run(ctx context.Context, db *gorm.DB, total int, fn Fn) Outcome {
	size := e.BatchSize
	if size <= 0 {
		size = DefaultSize
	}

	var out Outcome
	for start := 0; start < total; start += size {
		if e.expired() || ctx.Err() != nil {
			out.Truncated = true
			out.Remaining = total - out.Processed
			return out
		}

		end := start + size
		if end > total {
			end = total
		}

		var counts Counts
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var fnErr error
			counts, fnErr = fn(tx, start, end)
			return fnErr
		})
		if err != nil {
			// Batch-level failure: the chunk rolled back, all its rows
			// count as errors and the run moves on.
			counts = Counts{Errors: end - start}
		}

		out.Counts.Add(counts)
		out.Processed += end - start
		out.Batches++
	}

	return out
}

func (e Executor) expired() bool {
	return !e.Deadline.IsZero() && time.Now().After(e.Deadline)
}
