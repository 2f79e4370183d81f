package model

import (
	"time"
)

const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
	JobTypeHybrid   = "Hybrid"

	// LocationRemote marks a remote posting. Remote is a location, not a job type.
	LocationRemote = "Remote"
)

type Job struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Company     string    `gorm:"type:varchar(255)" json:"company"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	Type        string    `gorm:"type:varchar(50)" json:"type"`
	Skills      []string  `gorm:"serializer:json;type:jsonb" json:"skills"`
	Description string    `gorm:"type:text" json:"description"`
	Posted      time.Time `json:"posted"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// MatchResult is the oracle's verdict for one resume/job pair.
type MatchResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ScoredJob is a Job with the result of the latest scoring pass. A nil Match
// means the job has not been scored yet.
type ScoredJob struct {
	Job
	Match *MatchResult `json:"match,omitempty"`
}

// SortScore is the score used for ordering; unscored jobs rank as 0.
func (s ScoredJob) SortScore() int {
	if s.Match == nil {
		return 0
	}
	return s.Match.Score
}

// FilterCriteria narrows a scored job list for display. It is never persisted.
type FilterCriteria struct {
	SearchText   string `json:"searchText"`
	RemoteOnly   bool   `json:"remoteOnly"`
	FullTimeOnly bool   `json:"fullTimeOnly"`
	MinScore     int    `json:"minScore"`
}
