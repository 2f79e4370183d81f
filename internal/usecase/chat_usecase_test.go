package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/stretchr/testify/assert"
)

type stubChatOracle struct {
	reply      string
	err        error
	calls      int
	lastCtxJob string
}

func (s *stubChatOracle) Chat(_ context.Context, _ string, jobContext string) (string, error) {
	s.calls++
	s.lastCtxJob = jobContext
	return s.reply, s.err
}

type stubJobs struct {
	jobs []model.Job
	err  error
}

func (s stubJobs) GetJobs(context.Context) ([]model.Job, error) { return s.jobs, s.err }

func TestBuildJobContext(t *testing.T) {
	jobs := []model.Job{
		{Title: "Senior React Developer", Location: "Remote"},
		{Title: "UX Designer", Location: "London"},
	}
	assert.Equal(t, "Senior React Developer (Remote), UX Designer (London)", BuildJobContext(jobs))
	assert.Equal(t, "", BuildJobContext(nil))
}

func TestChatUsecase_Reply(t *testing.T) {
	oracle := &stubChatOracle{reply: "Look at the DevOps role."}
	uc := NewChatUsecase(oracle, stubJobs{jobs: []model.Job{{Title: "DevOps Engineer", Location: "Remote"}}}, time.Second, nil)

	assert.Equal(t, "Look at the DevOps role.", uc.Reply(context.Background(), "remote jobs?"))
	assert.Equal(t, "DevOps Engineer (Remote)", oracle.lastCtxJob)
}

func TestChatUsecase_FallbackOnOracleError(t *testing.T) {
	uc := NewChatUsecase(&stubChatOracle{err: errors.New("503")}, stubJobs{}, time.Second, nil)
	assert.Equal(t, FallbackReply, uc.Reply(context.Background(), "hello"))
}

func TestChatUsecase_FallbackOnBlankReply(t *testing.T) {
	uc := NewChatUsecase(&stubChatOracle{reply: "  "}, stubJobs{}, time.Second, nil)
	assert.Equal(t, FallbackReply, uc.Reply(context.Background(), "hello"))
}

func TestChatUsecase_EmptyMessageSkipsOracle(t *testing.T) {
	oracle := &stubChatOracle{reply: "x"}
	uc := NewChatUsecase(oracle, stubJobs{}, time.Second, nil)
	assert.Equal(t, FallbackReply, uc.Reply(context.Background(), "   "))
	assert.Zero(t, oracle.calls)
}

func TestChatUsecase_JobFeedErrorStillReplies(t *testing.T) {
	oracle := &stubChatOracle{reply: "sure"}
	uc := NewChatUsecase(oracle, stubJobs{err: errors.New("db down")}, time.Second, nil)
	assert.Equal(t, "sure", uc.Reply(context.Background(), "hi"))
	assert.Equal(t, "", oracle.lastCtxJob)
}

type blockingChatOracle struct {
	release chan struct{}
}

func (b blockingChatOracle) Chat(context.Context, string, string) (string, error) {
	<-b.release
	return "too late", nil
}

func TestChatUsecase_TimeoutWithOracleIgnoringContext(t *testing.T) {
	oracle := blockingChatOracle{release: make(chan struct{})}
	defer close(oracle.release)
	uc := NewChatUsecase(oracle, stubJobs{}, 30*time.Millisecond, nil)

	start := time.Now()
	assert.Equal(t, FallbackReply, uc.Reply(context.Background(), "hello"))
	assert.Less(t, time.Since(start), time.Second)
}
