package model

import "time"

// ListEntry is one element of a named append-only list kept in Postgres.
// Higher IDs are newer.
type ListEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ListKey   string    `gorm:"type:varchar(255);index;not null" json:"list_key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *ListEntry) TableName() string {
	return "list_entries"
}
