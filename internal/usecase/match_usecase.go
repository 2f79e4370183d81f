package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MaxResumeRunes      = 1000
	MaxDescriptionRunes = 500
)

// FallbackMatch replaces any score the oracle could not deliver.
var FallbackMatch = model.MatchResult{Score: 50, Reason: "AI Service Busy"}

type MatchOracle interface {
	Score(ctx context.Context, resumeText, description string) (model.MatchResult, error)
}

type MatchUsecase struct {
	oracle      MatchOracle
	timeout     time.Duration
	concurrency int
	logger      *zap.Logger
}

// NewMatchUsecase builds the scoring engine. timeout bounds every oracle call;
// concurrency caps in-flight calls per pass, 0 means one per job.
func NewMatchUsecase(oracle MatchOracle, timeout time.Duration, concurrency int, logger *zap.Logger) *MatchUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchUsecase{oracle: oracle, timeout: timeout, concurrency: concurrency, logger: logger}
}

// MatchOne scores a single resume/description pair. It never fails: errors,
// timeouts and invalid payloads all yield FallbackMatch.
func (uc *MatchUsecase) MatchOne(ctx context.Context, resumeText, description string) model.MatchResult {
	resumeText = util.TruncateRunes(resumeText, MaxResumeRunes)
	description = util.TruncateRunes(description, MaxDescriptionRunes)

	callCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	type outcome struct {
		res model.MatchResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := uc.oracle.Score(callCtx, resumeText, description)
		done <- outcome{res, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			uc.logger.Warn("scoring failed, using fallback", zap.Error(out.err))
			return FallbackMatch
		}
		return out.res
	case <-callCtx.Done():
		uc.logger.Warn("scoring timed out, using fallback", zap.Error(callCtx.Err()))
		return FallbackMatch
	}
}

// Score runs one scoring pass of resumeText against every job and returns
// the jobs ordered by descending score. The result is only produced once
// every call has resolved.
func (uc *MatchUsecase) Score(ctx context.Context, resumeText string, jobs []model.Job) []model.ScoredJob {
	scored := make([]model.ScoredJob, len(jobs))

	var g errgroup.Group
	if uc.concurrency > 0 {
		g.SetLimit(uc.concurrency)
	}
	for i, job := range jobs {
		g.Go(func() error {
			res := uc.MatchOne(ctx, resumeText, job.Description)
			scored[i] = model.ScoredJob{Job: job, Match: &res}
			return nil
		})
	}
	_ = g.Wait()

	SortByScore(scored)

	uc.logger.Info("scoring pass complete", zap.Int("jobs", len(scored)))
	return scored
}

// Rank scores jobs and narrows them with criteria for display.
func (uc *MatchUsecase) Rank(ctx context.Context, resumeText string, jobs []model.Job, criteria model.FilterCriteria) []model.ScoredJob {
	return FilterJobs(uc.Score(ctx, resumeText, jobs), criteria)
}

// SortByScore orders jobs by descending score, keeping input order on ties.
// Unscored jobs rank as 0.
func SortByScore(jobs []model.ScoredJob) {
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].SortScore() > jobs[b].SortScore()
	})
}
