package enumcat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"survey-manager/core/utils"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// NoValueSentinel marks a cell that explicitly carries no value.
const NoValueSentinel = "-"

// Pair identifies one (category, value) combination to resolve.
type Pair struct {
	Category string
	Value    string
}

// Resolver maps (category, normalized value) pairs to canonical entry IDs,
// creating entries on first sight. It is safe for concurrent use; concurrent
// first-sight creations of the same pair are collapsed via singleflight, and
// a losing racer against another process re-fetches instead of failing.
type Resolver struct {
	db *gorm.DB

	mu    sync.RWMutex
	cache map[string]uint
	sf    singleflight.Group
}

// NewResolver creates a resolver backed by the given database handle.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db:    db,
		cache: make(map[string]uint),
	}
}

// Resolve returns the canonical entry ID for the pair, or nil when the value
// is empty or the designated no-value sentinel.
func (r *Resolver) Resolve(ctx context.Context, category, value string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == NoValueSentinel {
		return nil, nil
	}

	key := category + "|" + value

	r.mu.RLock()
	id, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return &id, nil
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		r.mu.RLock()
		id, ok := r.cache[key]
		r.mu.RUnlock()
		if ok {
			return id, nil
		}

		entry, err := r.findOrCreate(ctx, category, value)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[key] = entry.ID
		r.mu.Unlock()

		return entry.ID, nil
	})
	if err != nil {
		return nil, err
	}

	resolved := result.(uint)
	return &resolved, nil
}

// ResolveAll resolves every pair concurrently and returns the results keyed by
// pair. Callers run this before opening any transaction so no lookup happens
// inside a transactional block.
func (r *Resolver) ResolveAll(ctx context.Context, pairs []Pair) (map[Pair]*uint, error) {
	results := make(map[Pair]*uint, len(pairs))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, p := range pairs {
		wg.Add(1)
		go func(p Pair) {
			defer wg.Done()
			id, err := r.Resolve(ctx, p.Category, p.Value)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[p] = id
		}(p)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// findOrCreate looks up the entry, creating it when absent. A unique-constraint
// race against another writer is resolved by re-fetching the winner's row.
func (r *Resolver) findOrCreate(ctx context.Context, category, value string) (*Entry, error) {
	var entry Entry
	err := r.db.WithContext(ctx).
		Where("category = ? AND value = ?", category, value).
		Take(&entry).Error
	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up enum %s/%s: %w", category, value, err)
	}

	entry = Entry{
		Category: category,
		Value:    value,
		Label:    utils.TitleLabel(value),
		Active:   true,
	}
	createErr := r.db.WithContext(ctx).Create(&entry).Error
	if createErr == nil {
		return &entry, nil
	}

	if isDuplicateErr(createErr) {
		var existing Entry
		if err := r.db.WithContext(ctx).
			Where("category = ? AND value = ?", category, value).
			Take(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to re-fetch enum %s/%s after conflict: %w", category, value, err)
		}
		return &existing, nil
	}

	return nil, fmt.Errorf("failed to create enum %s/%s: %w", category, value, createErr)
}

// isDuplicateErr detects unique-constraint violations across drivers.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}
