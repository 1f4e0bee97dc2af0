package cron

import (
	"context"
	"fmt"

	"github.com/shembeark/registrations-backend/internal/export"
	"github.com/shembeark/registrations-backend/pkg/logger"
)

type ExportJobParams struct {
	Logger  *logger.Logger
	Exports export.Service
}

// NewExportJob wraps the registration export cycle as a scheduled job.
func NewExportJob(params ExportJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Exports == nil {
		return nil, fmt.Errorf("export service required")
	}
	return &exportJob{
		logg:    params.Logger,
		exports: params.Exports,
	}, nil
}

type exportJob struct {
	logg    *logger.Logger
	exports export.Service
}

func (j *exportJob) Name() string { return "registration-export" }

func (j *exportJob) Run(ctx context.Context) error {
	result, err := j.exports.SendUnsent(ctx)
	if err != nil {
		return fmt.Errorf("registration export: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"count":    result.Count,
		"marked":   result.Marked,
		"email_id": result.EmailID,
	})
	j.logg.Info(logCtx, result.Message)
	return nil
}
