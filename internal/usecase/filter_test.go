package usecase

import (
	"testing"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleScoredJobs() []model.ScoredJob {
	return []model.ScoredJob{
		{
			Job:   model.Job{ID: 1, Title: "Senior React Developer", Location: "Remote", Type: model.JobTypeFullTime, Skills: []string{"React", "Node.js"}},
			Match: &model.MatchResult{Score: 90, Reason: "fit"},
		},
		{
			Job:   model.Job{ID: 2, Title: "Junior Python Engineer", Location: "New York", Type: model.JobTypeHybrid, Skills: []string{"Python", "SQL"}},
			Match: &model.MatchResult{Score: 40, Reason: "meh"},
		},
		{
			Job: model.Job{ID: 3, Title: "UX Designer", Location: "London", Type: model.JobTypeContract, Skills: []string{"Figma", "UI"}},
		},
		{
			Job:   model.Job{ID: 4, Title: "DevOps Engineer", Location: "remote", Type: "full-time", Skills: []string{"AWS", "Docker"}},
			Match: &model.MatchResult{Score: 60, Reason: "ok"},
		},
	}
}

func ids(jobs []model.ScoredJob) []uint {
	out := []uint{}
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestFilterJobs_EmptyCriteriaKeepsAll(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(FilterJobs(sampleScoredJobs(), model.FilterCriteria{})))
}

func TestFilterJobs_SearchTitleOrSkill(t *testing.T) {
	jobs := sampleScoredJobs()
	assert.Equal(t, []uint{2}, ids(FilterJobs(jobs, model.FilterCriteria{SearchText: "PYTHON"})))
	assert.Equal(t, []uint{1}, ids(FilterJobs(jobs, model.FilterCriteria{SearchText: "node"})))
	assert.Equal(t, []uint{2, 4}, ids(FilterJobs(jobs, model.FilterCriteria{SearchText: "engineer"})))
	assert.Empty(t, FilterJobs(jobs, model.FilterCriteria{SearchText: "rust"}))
}

func TestFilterJobs_RemoteAndFullTimeAreExact(t *testing.T) {
	jobs := sampleScoredJobs()
	assert.Equal(t, []uint{1}, ids(FilterJobs(jobs, model.FilterCriteria{RemoteOnly: true})))
	assert.Equal(t, []uint{1}, ids(FilterJobs(jobs, model.FilterCriteria{FullTimeOnly: true})))
}

func TestFilterJobs_UnscoredPassesMinScore(t *testing.T) {
	jobs := sampleScoredJobs()
	for _, min := range []int{1, 50, 100} {
		got := ids(FilterJobs(jobs, model.FilterCriteria{MinScore: min}))
		assert.Contains(t, got, uint(3), "minScore %d", min)
	}
	assert.Equal(t, []uint{1, 3, 4}, ids(FilterJobs(jobs, model.FilterCriteria{MinScore: 60})))
}

func TestFilterJobs_MinScoreClamped(t *testing.T) {
	jobs := sampleScoredJobs()
	assert.Len(t, FilterJobs(jobs, model.FilterCriteria{MinScore: -20}), 4)
	assert.Equal(t, []uint{3}, ids(FilterJobs(jobs, model.FilterCriteria{MinScore: 500})))
}

func TestFilterJobs_CombinedAndPreservesOrder(t *testing.T) {
	jobs := []model.ScoredJob{sampleScoredJobs()[3], sampleScoredJobs()[0], sampleScoredJobs()[2]}
	got := FilterJobs(jobs, model.FilterCriteria{SearchText: "e", MinScore: 50})
	assert.Equal(t, []uint{4, 1, 3}, ids(got))

	got = FilterJobs(jobs, model.FilterCriteria{SearchText: "react", RemoteOnly: true, FullTimeOnly: true, MinScore: 95})
	assert.Empty(t, got)
}

func TestFilterJobs_Idempotent(t *testing.T) {
	criteria := model.FilterCriteria{SearchText: "er", MinScore: 50}
	once := FilterJobs(sampleScoredJobs(), criteria)
	twice := FilterJobs(once, criteria)
	assert.Equal(t, once, twice)
}

func TestFilterJobs_DoesNotMutateInput(t *testing.T) {
	jobs := sampleScoredJobs()
	_ = FilterJobs(jobs, model.FilterCriteria{RemoteOnly: true})
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(jobs))
}
