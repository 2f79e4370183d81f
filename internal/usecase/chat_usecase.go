package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"go.uber.org/zap"
)

const FallbackReply = "I'm having trouble reaching the assistant right now. Please try again shortly."

type ChatOracle interface {
	Chat(ctx context.Context, message, jobContext string) (string, error)
}

type JobSource interface {
	GetJobs(ctx context.Context) ([]model.Job, error)
}

// ChatUsecase relays a message to the oracle with the current job list as
// context. It keeps no conversation state.
type ChatUsecase struct {
	oracle  ChatOracle
	jobs    JobSource
	timeout time.Duration
	logger  *zap.Logger
}

func NewChatUsecase(oracle ChatOracle, jobs JobSource, timeout time.Duration, logger *zap.Logger) *ChatUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatUsecase{oracle: oracle, jobs: jobs, timeout: timeout, logger: logger}
}

// Reply always returns a non-empty answer.
func (uc *ChatUsecase) Reply(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return FallbackReply
	}

	jobs, err := uc.jobs.GetJobs(ctx)
	if err != nil {
		uc.logger.Warn("chat without job context", zap.Error(err))
	}

	callCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	type outcome struct {
		reply string
		err   error
	}
	done := make(chan outcome, 1)
	jobContext := BuildJobContext(jobs)
	go func() {
		reply, err := uc.oracle.Chat(callCtx, message, jobContext)
		done <- outcome{reply, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			uc.logger.Warn("chat failed, using fallback", zap.Error(out.err))
			return FallbackReply
		}
		if strings.TrimSpace(out.reply) == "" {
			return FallbackReply
		}
		return out.reply
	case <-callCtx.Done():
		uc.logger.Warn("chat timed out, using fallback", zap.Error(callCtx.Err()))
		return FallbackReply
	}
}

// BuildJobContext renders jobs as "Title (Location)" joined by commas.
func BuildJobContext(jobs []model.Job) string {
	parts := make([]string, 0, len(jobs))
	for _, j := range jobs {
		parts = append(parts, fmt.Sprintf("%s (%s)", j.Title, j.Location))
	}
	return strings.Join(parts, ", ")
}
