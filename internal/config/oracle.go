package config

import (
	"os"
	"strings"
	"sync"
	"time"
)

const (
	OracleGemini     = "gemini"
	OracleOpenRouter = "openrouter"
)

type OracleConfig struct {
	Provider         string
	MatchTimeout     time.Duration
	MatchConcurrency int
	ChatTimeout      time.Duration
	MaxLogLength     int
}

var (
	oracleConfig *OracleConfig
	oracleOnce   sync.Once
)

func LoadOracleConfig() *OracleConfig {
	oracleOnce.Do(func() {
		provider := strings.ToLower(strings.TrimSpace(os.Getenv("ORACLE_PROVIDER")))
		if provider == "" {
			provider = OracleGemini
		}
		oracleConfig = &OracleConfig{
			Provider:         provider,
			MatchTimeout:     time.Duration(envInt("MATCH_TIMEOUT_SECONDS", 20)) * time.Second,
			MatchConcurrency: envInt("MATCH_CONCURRENCY", 0),
			ChatTimeout:      time.Duration(envInt("CHAT_TIMEOUT_SECONDS", 30)) * time.Second,
			MaxLogLength:     envInt("ORACLE_LOG_PREVIEW", 200),
		}
	})
	return oracleConfig
}
