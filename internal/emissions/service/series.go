package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"emissions/internal/emissions/aggregate"
	dErrors "emissions/pkg/domain-errors"
)

// SeriesQuery selects countries and an optional year range. Zero From or To
// fall back to the registry bounds.
type SeriesQuery struct {
	Codes []string
	From  int
	To    int
}

// CountrySeries holds one country's sampled and full-resolution series.
type CountrySeries struct {
	Code    string
	Name    string
	Sampled []aggregate.YearValue
	Full    []aggregate.YearValue
}

// SeriesResult is the answer to a SeriesQuery.
type SeriesResult struct {
	From   int
	To     int
	Step   int
	Series []CountrySeries
}

// EmissionsSeries builds emissions time series for the requested countries,
// sampled every tenth of the range plus a yearly series.
func (s *Service) EmissionsSeries(ctx context.Context, q SeriesQuery) (_ *SeriesResult, err error) {
	done := s.begin(ctx, opEmissionsSeries,
		attribute.String("country.codes", strings.Join(q.Codes, ",")),
		attribute.Int("from", q.From),
		attribute.Int("to", q.To),
	)
	defer func() { done(err) }()

	if len(q.Codes) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one country code is required")
	}
	if len(q.Codes) > maxSeriesCountries {
		return nil, dErrors.New(dErrors.CodeValidation, "too many country codes")
	}

	from, to := q.From, q.To
	if from == 0 || to == 0 {
		minYear, maxYear, ok := s.registry.Bounds().Range()
		if !ok {
			return nil, dErrors.New(dErrors.CodeNotFound, "no years recorded")
		}
		if from == 0 {
			from = minYear
		}
		if to == 0 {
			to = maxYear
		}
	}
	if err := validateYear(from); err != nil {
		return nil, err
	}
	if to < from {
		return nil, dErrors.New(dErrors.CodeValidation, "to must not precede from")
	}
	if to-from >= maxSeriesSpan {
		return nil, dErrors.New(dErrors.CodeValidation, "year range too wide")
	}

	result := &SeriesResult{From: from, To: to, Step: aggregate.SampleStep(from, to)}
	for _, code := range q.Codes {
		c, err := s.lookup(code)
		if err != nil {
			return nil, err
		}
		result.Series = append(result.Series, CountrySeries{
			Code:    c.Code().String(),
			Name:    c.Name(),
			Sampled: aggregate.EmissionsSeries(c, from, to, result.Step),
			Full:    aggregate.EmissionsSeries(c, from, to, 1),
		})
	}
	return result, nil
}
