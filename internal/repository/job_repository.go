package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"gorm.io/gorm"
)

// JobRepository serves the job feed. Without a database it serves the seed
// list held in memory.
type JobRepository struct {
	db   *gorm.DB
	seed []model.Job
}

func NewJobRepository(db *gorm.DB, seed []model.Job) *JobRepository {
	return &JobRepository{db: db, seed: seed}
}

func (r *JobRepository) GetJobs(ctx context.Context) ([]model.Job, error) {
	if r.db == nil {
		jobs := make([]model.Job, len(r.seed))
		copy(jobs, r.seed)
		return jobs, nil
	}
	var jobs []model.Job
	err := r.db.WithContext(ctx).Order("id ASC").Find(&jobs).Error
	return jobs, err
}

// SeedJobs inserts the seed list when the jobs table is empty.
func (r *JobRepository) SeedJobs(ctx context.Context) error {
	if r.db == nil || len(r.seed) == 0 {
		return nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}
	jobs := make([]model.Job, len(r.seed))
	copy(jobs, r.seed)
	if err := r.db.WithContext(ctx).Create(&jobs).Error; err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}
	return nil
}

// DefaultJobs is the built-in feed used when no database is configured.
func DefaultJobs(now time.Time) []model.Job {
	return []model.Job{
		{
			ID:          1,
			Title:       "Senior React Developer",
			Company:     "TechFlow",
			Location:    model.LocationRemote,
			Type:        model.JobTypeFullTime,
			Skills:      []string{"React", "Node.js"},
			Description: "Expert React dev needed.",
			Posted:      now,
		},
		{
			ID:          2,
			Title:       "Junior Python Engineer",
			Company:     "DataCorp",
			Location:    "New York",
			Type:        model.JobTypeHybrid,
			Skills:      []string{"Python", "SQL"},
			Description: "Backend data role.",
			Posted:      now,
		},
		{
			ID:          3,
			Title:       "UX Designer",
			Company:     "CreativeStudio",
			Location:    "London",
			Type:        model.JobTypeContract,
			Skills:      []string{"Figma", "UI"},
			Description: "Design systems.",
			Posted:      now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:          4,
			Title:       "DevOps Engineer",
			Company:     "CloudSystems",
			Location:    model.LocationRemote,
			Type:        model.JobTypeFullTime,
			Skills:      []string{"AWS", "Docker"},
			Description: "Infrastructure scaling.",
			Posted:      now,
		},
	}
}
