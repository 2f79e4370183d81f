package usecase

import (
	"strings"

	"github.com/fadilmartias/job-tracker/internal/model"
)

// FilterJobs keeps the jobs that satisfy every criterion, in input order.
// A job without a match result always passes the minimum score check.
func FilterJobs(jobs []model.ScoredJob, criteria model.FilterCriteria) []model.ScoredJob {
	search := strings.ToLower(criteria.SearchText)
	minScore := clampScore(criteria.MinScore)

	out := make([]model.ScoredJob, 0, len(jobs))
	for _, j := range jobs {
		if !matchesSearch(j.Job, search) {
			continue
		}
		if criteria.RemoteOnly && j.Location != model.LocationRemote {
			continue
		}
		if criteria.FullTimeOnly && j.Type != model.JobTypeFullTime {
			continue
		}
		if j.Match != nil && j.Match.Score < minScore {
			continue
		}
		out = append(out, j)
	}
	return out
}

// matchesSearch expects search already lowercased.
func matchesSearch(job model.Job, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(job.Title), search) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

func clampScore(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
