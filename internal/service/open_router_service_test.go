package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterService_GenerateContent(t *testing.T) {
	var gotAuth, gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"score\":70,\"reason\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	svc, err := NewOpenRouterService(&config.OpenRouterConfig{APIKey: "k", Model: "m", URL: srv.URL})
	require.NoError(t, err)

	text, err := svc.GenerateContent(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"score":70,"reason":"ok"}`, text)
	assert.Equal(t, "Bearer k", gotAuth)
	assert.Equal(t, "m", gotModel)
}

func TestOpenRouterService_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	svc, err := NewOpenRouterService(&config.OpenRouterConfig{APIKey: "k", Model: "m", URL: srv.URL})
	require.NoError(t, err)

	_, err = svc.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestOpenRouterService_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc, err := NewOpenRouterService(&config.OpenRouterConfig{APIKey: "k", Model: "m", URL: srv.URL})
	require.NoError(t, err)

	_, err = svc.GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestNewOpenRouterService_RequiresKey(t *testing.T) {
	_, err := NewOpenRouterService(&config.OpenRouterConfig{})
	assert.Error(t, err)
}
