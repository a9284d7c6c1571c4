package batch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBatchDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`CREATE TABLE IF NOT EXISTS items (id INTEGER PRIMARY KEY, val INTEGER)`).Error
	require.NoError(t, err)
	return db
}

func TestExecutor_ChunksAndCounts(t *testing.T) {
	db := setupBatchDB(t, "batch_chunks")

	e := Executor{BatchSize: 4}
	out := e.Run(context.Background(), db, 10, func(tx *gorm.DB, start, end int) (Counts, error) {
		for i := start; i < end; i++ {
			if err := tx.Exec(`INSERT INTO items (val) VALUES (?)`, i).Error; err != nil {
				return Counts{}, err
			}
		}
		return Counts{Created: end - start}, nil
	})

	assert.Equal(t, 10, out.Processed)
	assert.Equal(t, 0, out.Remaining)
	assert.Equal(t, 3, out.Batches) // 4 + 4 + 2
	assert.False(t, out.Truncated)
	assert.Equal(t, 10, out.Counts.Created)

	var count int64
	db.Table("items").Count(&count)
	assert.EqualValues(t, 10, count)
}

func TestExecutor_BatchFailureDoesNotAbortRun(t *testing.T) {
	db := setupBatchDB(t, "batch_failure")

	e := Executor{BatchSize: 3}
	out := e.Run(context.Background(), db, 9, func(tx *gorm.DB, start, end int) (Counts, error) {
		if start == 3 {
			// Simulate a chunk-level commit failure
			return Counts{}, fmt.Errorf("deadlock detected")
		}
		return Counts{Created: end - start}, nil
	})

	assert.Equal(t, 9, out.Processed)
	assert.Equal(t, 3, out.Batches)
	assert.Equal(t, 6, out.Counts.Created)
	assert.Equal(t, 3, out.Counts.Errors)
	assert.False(t, out.Truncated)
}

func TestExecutor_DeadlineTruncation(t *testing.T) {
	db := setupBatchDB(t, "batch_deadline")

	e := Executor{BatchSize: 2, Deadline: time.Now().Add(30 * time.Millisecond)}
	out := e.Run(context.Background(), db, 100, func(tx *gorm.DB, start, end int) (Counts, error) {
		time.Sleep(25 * time.Millisecond)
		return Counts{Updated: end - start}, nil
	})

	assert.True(t, out.Truncated)
	assert.Less(t, out.Processed, 100)
	assert.Equal(t, 100-out.Processed, out.Remaining)
	// The chunk that started before the deadline finished as a unit.
	assert.Equal(t, out.Processed, out.Counts.Updated)
}

func TestExecutor_ContextCancellation(t *testing.T) {
	db := setupBatchDB(t, "batch_cancel")

	ctx, cancel := context.WithCancel(context.Background())

	e := Executor{BatchSize: 5}
	out := e.Run(ctx, db, 20, func(tx *gorm.DB, start, end int) (Counts, error) {
		if start == 0 {
			cancel()
		}
		return Counts{Created: end - start}, nil
	})

	assert.True(t, out.Truncated)
	assert.Equal(t, 5, out.Processed)
	assert.Equal(t, 15, out.Remaining)
}

func TestExecutor_DefaultBatchSize(t *testing.T) {
	db := setupBatchDB(t, "batch_default")

	e := Executor{}
	out := e.Run(context.Background(), db, DefaultSize+1, func(tx *gorm.DB, start, end int) (Counts, error) {
		return Counts{}, nil
	})

	assert.Equal(t, 2, out.Batches)
}
