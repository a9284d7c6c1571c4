package enumcat

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEnumDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Entry{}))
	return db
}

func TestResolve_Sentinels(t *testing.T) {
	db := setupEnumDB(t, "enum_sentinel")
	r := NewResolver(db)

	tests := []struct {
		name  string
		value string
	}{
		{"Empty", ""},
		{"Whitespace", "   "},
		{"Dash", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := r.Resolve(context.Background(), CategoryInstallStatus, tt.value)
			require.NoError(t, err)
			assert.Nil(t, id)
		})
	}

	var count int64
	db.Model(&Entry{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestResolve_AutoCreation(t *testing.T) {
	db := setupEnumDB(t, "enum_autocreate")
	r := NewResolver(db)

	id, err := r.Resolve(context.Background(), CategoryInstallStatus, "GO_LIVE")
	require.NoError(t, err)
	require.NotNil(t, id)

	var entry Entry
	require.NoError(t, db.Take(&entry, *id).Error)
	assert.Equal(t, "GO_LIVE", entry.Value)
	assert.Equal(t, "Go Live", entry.Label)
	assert.True(t, entry.Active)

	// Resolving again returns the same entry, no duplicate
	again, err := r.Resolve(context.Background(), CategoryInstallStatus, "GO_LIVE")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, *id, *again)

	var count int64
	db.Model(&Entry{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolve_SameValueDifferentCategory(t *testing.T) {
	db := setupEnumDB(t, "enum_categories")
	r := NewResolver(db)

	a, err := r.Resolve(context.Background(), CategoryInstallStatus, "DONE")
	require.NoError(t, err)
	b, err := r.Resolve(context.Background(), CategoryJobStatus, "DONE")
	require.NoError(t, err)

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, *a, *b)
}

func TestResolve_ConcurrentNoDuplicates(t *testing.T) {
	db := setupEnumDB(t, "enum_concurrent")
	r := NewResolver(db)

	const goroutines = 16
	ids := make([]*uint, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = r.Resolve(context.Background(), CategoryRemark, "PERMIT_PENDING")
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, ids[i])
		assert.Equal(t, *ids[0], *ids[i])
	}

	var count int64
	db.Model(&Entry{}).Where("category = ?", CategoryRemark).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolve_RaceAgainstExternalWriter(t *testing.T) {
	db := setupEnumDB(t, "enum_race")

	// Another process already created the entry; a fresh resolver with a cold
	// cache must return the existing row, not fail on the unique index.
	existing := Entry{Category: CategoryOrderType, Value: "EXPANSION", Label: "Expansion", Active: true}
	require.NoError(t, db.Create(&existing).Error)

	r := NewResolver(db)
	id, err := r.Resolve(context.Background(), CategoryOrderType, "EXPANSION")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, existing.ID, *id)
}

func TestResolveAll_FanOut(t *testing.T) {
	db := setupEnumDB(t, "enum_fanout")
	r := NewResolver(db)

	pairs := []Pair{
		{CategoryInstallStatus, "GO_LIVE"},
		{CategoryInstallStatus, "SURVEY_DONE"},
		{CategoryJobStatus, "ON_TRACK"},
		{CategoryJobStatus, ""},
		{CategoryRemark, "-"},
	}

	results, err := r.ResolveAll(context.Background(), pairs)
	require.NoError(t, err)

	assert.NotNil(t, results[Pair{CategoryInstallStatus, "GO_LIVE"}])
	assert.NotNil(t, results[Pair{CategoryInstallStatus, "SURVEY_DONE"}])
	assert.NotNil(t, results[Pair{CategoryJobStatus, "ON_TRACK"}])
	assert.Nil(t, results[Pair{CategoryJobStatus, ""}])
	assert.Nil(t, results[Pair{CategoryRemark, "-"}])
}
