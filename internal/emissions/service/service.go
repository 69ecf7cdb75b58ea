// Package service answers aggregation queries over a loaded registry.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"emissions/internal/emissions/metrics"
	"emissions/internal/emissions/models"
	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/requestcontext"
)

const (
	tracerName = "emissions.service"

	defaultMaxTopN = 50
	// maxSeriesCountries bounds how many countries one series request may name.
	maxSeriesCountries = 10
	// maxSeriesSpan bounds the number of years in one series request.
	maxSeriesSpan = 1000
)

// Registry is the read side of the country registry.
type Registry interface {
	Get(code string) (*models.Country, error)
	All() []*models.Country
	Bounds() *models.YearBounds
}

// Service orchestrates aggregation queries.
type Service struct {
	registry Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	maxTopN  int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithMaxTopN caps the n accepted by ranking queries.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		s.maxTopN = n
	}
}

// New constructs a Service over registry.
func New(registry Registry, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}
	s := &Service{
		registry: registry,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		maxTopN:  defaultMaxTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxTopN < 1 {
		return nil, errors.New("max top n must be positive")
	}
	return s, nil
}

// begin opens a span for operation. The returned func closes it and records
// the outcome; pass it the operation's final error.
func (s *Service) begin(ctx context.Context, operation string, attrs ...attribute.KeyValue) func(error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "emissions."+operation, trace.WithAttributes(attrs...))
	return func(err error) {
		defer span.End()
		s.metrics.ObserveQuery(operation, start)
		if err == nil {
			return
		}
		code := dErrors.CodeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(code))
		s.metrics.IncrementQueryError(operation, string(code))

		level := slog.LevelDebug
		if code == dErrors.CodeInternal {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "emissions query failed",
			"operation", operation,
			"request_id", requestcontext.RequestID(ctx),
			"code", code,
			"error", err,
		)
	}
}

func validateYear(year int) error {
	if year < 1 {
		return dErrors.New(dErrors.CodeValidation, "year must be positive")
	}
	return nil
}

func (s *Service) validateTopN(n int) error {
	if n < 1 || n > s.maxTopN {
		return dErrors.New(dErrors.CodeValidation, "n must be between 1 and max top n")
	}
	return nil
}
