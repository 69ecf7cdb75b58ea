package service

import (
	"context"
	"log/slog"

	"emissions/internal/emissions/metrics"
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/registry"
	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/platform/sentinel"
)

// maxLoggedRejections bounds per-row warnings during a lenient load.
const maxLoggedRejections = 20

// LoadOptions controls LoadRegistry.
type LoadOptions struct {
	// Strict aborts on the first invalid row instead of skipping it.
	Strict  bool
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// LoadRegistry replays records into a new registry.
func LoadRegistry(ctx context.Context, records []models.Record, opts LoadOptions) (*registry.Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if len(records) == 0 {
		return nil, dErrors.Wrap(sentinel.ErrEmpty, dErrors.CodeValidation, "no records to load")
	}

	if opts.Strict {
		reg, err := registry.BuildFromRecords(records)
		if err != nil {
			opts.Metrics.ObserveIngest(0, 1, 0)
			return nil, err
		}
		opts.Metrics.ObserveIngest(len(records), 0, reg.Len())
		logger.InfoContext(ctx, "registry loaded", "rows", len(records), "countries", reg.Len())
		return reg, nil
	}

	reg := registry.New()
	report := reg.IngestAll(records)
	for i, rej := range report.Rejections {
		if i == maxLoggedRejections {
			logger.WarnContext(ctx, "further rejected rows not logged", "remaining", len(report.Rejections)-i)
			break
		}
		logger.WarnContext(ctx, "row rejected", "row", rej.Row, "code", rej.Code, "error", rej.Err)
	}
	opts.Metrics.ObserveIngest(report.Accepted, len(report.Rejections), reg.Len())

	if report.Accepted == 0 {
		return nil, dErrors.Wrap(sentinel.ErrEmpty, dErrors.CodeValidation, "every record was rejected")
	}
	logger.InfoContext(ctx, "registry loaded",
		"rows", report.Accepted,
		"rejected", len(report.Rejections),
		"countries", reg.Len(),
	)
	return reg, nil
}
