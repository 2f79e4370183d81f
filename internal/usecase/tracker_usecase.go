package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPersistence is returned when an application could not be stored.
var ErrPersistence = errors.New("application not persisted")

type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *model.Application) error
	GetApplications(ctx context.Context) ([]model.Application, error)
}

// TrackerUsecase records application decisions. Records are write-once and
// there is no status transition.
type TrackerUsecase struct {
	repo   ApplicationStore
	now    func() time.Time
	logger *zap.Logger
}

func NewTrackerUsecase(repo ApplicationStore, logger *zap.Logger) *TrackerUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackerUsecase{repo: repo, now: time.Now, logger: logger}
}

// Record stores one application for a confirming intent. A declined intent
// returns (nil, nil) and stores nothing.
func (uc *TrackerUsecase) Record(ctx context.Context, ref model.JobRef, intent model.Intent, extra map[string]json.RawMessage) (*model.Application, error) {
	status, ok := intent.Status()
	if !ok {
		uc.logger.Debug("intent declined, nothing recorded", zap.String("job_id", ref.JobID))
		return nil, nil
	}

	app := &model.Application{
		ID:        uuid.NewString(),
		JobID:     ref.JobID,
		JobTitle:  ref.JobTitle,
		Company:   ref.Company,
		Status:    status,
		Timestamp: uc.now().UTC(),
		Extra:     extra,
	}
	if err := uc.repo.CreateApplication(ctx, app); err != nil {
		uc.logger.Error("failed to persist application",
			zap.String("job_id", ref.JobID),
			zap.String("intent", intent.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	uc.logger.Info("application recorded",
		zap.String("id", app.ID),
		zap.String("job_id", app.JobID),
		zap.String("intent", intent.String()),
	)
	return app, nil
}

// ListAll returns every application, most recent first.
func (uc *TrackerUsecase) ListAll(ctx context.Context) ([]model.Application, error) {
	apps, err := uc.repo.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return apps, nil
}
