package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/job-tracker/internal/logger"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	maxReasonRunes      = 200
	defaultMaxLogLength = 200
)

// ErrInvalidOracleResponse marks model output that does not satisfy the
// {score, reason} contract.
var ErrInvalidOracleResponse = errors.New("invalid oracle response")

// ScoringOracle wraps a Generator with the match and chat prompts. It only
// ever hands back validated values or an error.
type ScoringOracle struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewScoringOracle(generator Generator, logger *zap.Logger, maxLogLength int) *ScoringOracle {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoringOracle{generator: generator, logger: logger, maxLogLen: maxLogLength}
}

// Score asks the model to rate how well resumeText fits description.
func (o *ScoringOracle) Score(ctx context.Context, resumeText, description string) (model.MatchResult, error) {
	prompt := buildMatchPrompt(resumeText, description)

	o.logger.Debug("oracle match request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, o.maxLogLen)),
	)

	raw, err := o.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return model.MatchResult{}, err
	}

	o.logger.Debug("oracle match response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, o.maxLogLen)),
	)

	return parseMatchResult(raw)
}

// Chat answers a free-form message given a summary of the available jobs.
func (o *ScoringOracle) Chat(ctx context.Context, message, jobContext string) (string, error) {
	prompt := fmt.Sprintf("System: You are a Job Assistant. Available jobs: %s. User: %s. Keep answer short.", jobContext, message)

	raw, err := o.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", fmt.Errorf("%w: empty chat reply", ErrInvalidOracleResponse)
	}
	return reply, nil
}

func buildMatchPrompt(resumeText, description string) string {
	return fmt.Sprintf(`Role: Recruiter. Task: Compare Resume to Job.
Resume: %s...
Job: %s...
Output JSON ONLY: { "score": (0-100 number), "reason": (max 15 words explaining why) }`, resumeText, description)
}

func parseMatchResult(raw string) (model.MatchResult, error) {
	payload := extractJSON(raw)
	if !gjson.Valid(payload) {
		return model.MatchResult{}, fmt.Errorf("%w: not json", ErrInvalidOracleResponse)
	}

	parsed := gjson.Parse(payload)
	if !parsed.IsObject() {
		return model.MatchResult{}, fmt.Errorf("%w: not an object", ErrInvalidOracleResponse)
	}

	score := parsed.Get("score")
	if score.Type != gjson.Number {
		return model.MatchResult{}, fmt.Errorf("%w: score is %s", ErrInvalidOracleResponse, score.Type)
	}
	value := score.Float()
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > 100 {
		return model.MatchResult{}, fmt.Errorf("%w: score %v out of range", ErrInvalidOracleResponse, value)
	}

	reason := parsed.Get("reason")
	if reason.Type != gjson.String {
		return model.MatchResult{}, fmt.Errorf("%w: reason is %s", ErrInvalidOracleResponse, reason.Type)
	}

	return model.MatchResult{
		Score:  int(math.Round(value)),
		Reason: util.TruncateRunes(strings.TrimSpace(reason.String()), maxReasonRunes),
	}, nil
}

// extractJSON strips markdown fences and any prose around the outermost object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.TrimSpace(strings.Trim(raw, "`"))

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}
	return raw
}
