package repository

import (
	"context"
	"fmt"

	"github.com/fadilmartias/job-tracker/internal/model"
	"gorm.io/gorm"
)

// GormListStore stores list elements as rows of list_entries. Ordering comes
// from the autoincrement id, so concurrent appends never need a lock.
type GormListStore struct {
	db *gorm.DB
}

func NewGormListStore(db *gorm.DB) *GormListStore {
	return &GormListStore{db}
}

func (s *GormListStore) Append(ctx context.Context, key string, value []byte) error {
	entry := model.ListEntry{ListKey: key, Value: string(value)}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("insert list entry %s: %w", key, err)
	}
	return nil
}

func (s *GormListStore) Range(ctx context.Context, key string) ([][]byte, error) {
	var entries []model.ListEntry
	err := rangeQuery(s.db.WithContext(ctx), key, &entries).Error
	if err != nil {
		return nil, fmt.Errorf("select list entries %s: %w", key, err)
	}
	out := make([][]byte, 0, len(entries))
	for _, e := range entries {
		out = append(out, []byte(e.Value))
	}
	return out, nil
}

// rangeQuery selects the entries of one list, newest first.
func rangeQuery(tx *gorm.DB, key string, dest *[]model.ListEntry) *gorm.DB {
	return tx.Where("list_key = ?", key).Order("id DESC").Find(dest)
}
