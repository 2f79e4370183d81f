package repository

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestGormListStore_RangeQueryNewestFirst(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var entries []model.ListEntry
		return rangeQuery(tx, "user:applications", &entries)
	})

	assert.Contains(t, sql, `FROM "list_entries"`)
	assert.Contains(t, sql, `list_key = 'user:applications'`)
	assert.Contains(t, sql, "ORDER BY id DESC")
}

func TestGormListStore_AppendInsertsKeyedRow(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		entry := model.ListEntry{ListKey: "user:applications", Value: `{"jobId":"1"}`}
		return tx.Create(&entry)
	})

	assert.Contains(t, sql, `INSERT INTO "list_entries"`)
	assert.Contains(t, sql, `'user:applications'`)
	assert.Contains(t, sql, `RETURNING "id"`)
}

func TestGormListStore_DryRunSession(t *testing.T) {
	store := NewGormListStore(newDryRunDB(t).Session(&gorm.Session{DryRun: true}))
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "user:applications", []byte(`{"jobId":"1"}`)))
	got, err := store.Range(ctx, "user:applications")
	require.NoError(t, err)
	assert.Empty(t, got)
}
