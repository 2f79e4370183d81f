package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fadilmartias/job-tracker/internal/model"
	"go.uber.org/zap"
)

type ApplicationRepository struct {
	store  ListStore
	key    string
	logger *zap.Logger
}

func NewApplicationRepository(store ListStore, key string, logger *zap.Logger) *ApplicationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationRepository{store: store, key: key, logger: logger}
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *model.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	return r.store.Append(ctx, r.key, data)
}

// GetApplications returns every stored application, newest first. Entries
// that no longer decode are logged and skipped.
func (r *ApplicationRepository) GetApplications(ctx context.Context) ([]model.Application, error) {
	raw, err := r.store.Range(ctx, r.key)
	if err != nil {
		return nil, err
	}
	apps := make([]model.Application, 0, len(raw))
	for i, item := range raw {
		var app model.Application
		if err := json.Unmarshal(item, &app); err != nil {
			r.logger.Warn("skip undecodable application",
				zap.String("key", r.key),
				zap.Int("position", i),
				zap.Error(err),
			)
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}
