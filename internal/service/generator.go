package service

import (
	"context"
	"errors"
	"fmt"
)

// Generator turns a prompt into raw model text.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

var ErrOracleUnavailable = errors.New("oracle unavailable")

// UnavailableGenerator stands in when no provider could be configured. Every
// call fails, which callers translate into their fallback values.
type UnavailableGenerator struct {
	Reason string
}

func (g UnavailableGenerator) GenerateContent(context.Context, string) (string, error) {
	if g.Reason == "" {
		return "", ErrOracleUnavailable
	}
	return "", fmt.Errorf("%w: %s", ErrOracleUnavailable, g.Reason)
}
