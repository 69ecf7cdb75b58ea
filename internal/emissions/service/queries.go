package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"emissions/internal/emissions/aggregate"
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/ranking"
	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/platform/sentinel"
)

const (
	opCountry             = "country"
	opBounds              = "bounds"
	opContinentPerCapita  = "continent_per_capita"
	opContinentHistorical = "continent_historical"
	opTotalPerCapita      = "total_per_capita"
	opTotalHistorical     = "total_historical"
	opTopPerCapita        = "top_per_capita"
	opTopHistorical       = "top_historical"
	opEmissionsSeries     = "emissions_series"
)

// YearRange is an inclusive span of years.
type YearRange struct {
	Min int
	Max int
}

// Country returns the country registered under code.
func (s *Service) Country(ctx context.Context, code string) (_ *models.Country, err error) {
	done := s.begin(ctx, opCountry, attribute.String("country.code", code))
	defer func() { done(err) }()

	return s.lookup(code)
}

func (s *Service) lookup(code string) (*models.Country, error) {
	c, err := s.registry.Get(code)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.New(dErrors.CodeNotFound, "country not found: "+code)
	case dErrors.HasCode(err, dErrors.CodeInvariantViolation):
		return nil, dErrors.New(dErrors.CodeValidation, err.Error())
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load country")
	}
}

// Bounds returns the smallest and largest construction years seen.
func (s *Service) Bounds(ctx context.Context) (_ YearRange, err error) {
	done := s.begin(ctx, opBounds)
	defer func() { done(err) }()

	minYear, maxYear, ok := s.registry.Bounds().Range()
	if !ok {
		return YearRange{}, dErrors.New(dErrors.CodeNotFound, "no years recorded")
	}
	return YearRange{Min: minYear, Max: maxYear}, nil
}

// ContinentPerCapita returns per-capita emissions per continent for year.
func (s *Service) ContinentPerCapita(ctx context.Context, year int) (_ []aggregate.LabeledValue, err error) {
	done := s.begin(ctx, opContinentPerCapita, attribute.Int("year", year))
	defer func() { done(err) }()

	if err := validateYear(year); err != nil {
		return nil, err
	}
	return aggregate.ContinentPerCapita(s.registry.All(), year), nil
}

// ContinentHistorical returns historical emissions per continent up to year.
func (s *Service) ContinentHistorical(ctx context.Context, year int) (_ []aggregate.LabeledValue, err error) {
	done := s.begin(ctx, opContinentHistorical, attribute.Int("year", year))
	defer func() { done(err) }()

	if err := validateYear(year); err != nil {
		return nil, err
	}
	return aggregate.ContinentHistorical(s.registry.All(), year), nil
}

// TotalPerCapita returns the per-capita emissions of one continent, or of every
// country when continent is empty. Continent labels match case-insensitively.
func (s *Service) TotalPerCapita(ctx context.Context, year int, continent string) (_ float64, err error) {
	done := s.begin(ctx, opTotalPerCapita, attribute.Int("year", year), attribute.String("continent", continent))
	defer func() { done(err) }()

	if err := validateYear(year); err != nil {
		return 0, err
	}
	members, err := s.members(continent)
	if err != nil {
		return 0, err
	}
	return aggregate.TotalCO2PerCapitaByYear(members, year), nil
}

// TotalHistorical returns the historical emissions of one continent, or of
// every country when continent is empty.
func (s *Service) TotalHistorical(ctx context.Context, year int, continent string) (_ float64, err error) {
	done := s.begin(ctx, opTotalHistorical, attribute.Int("year", year), attribute.String("continent", continent))
	defer func() { done(err) }()

	if err := validateYear(year); err != nil {
		return 0, err
	}
	members, err := s.members(continent)
	if err != nil {
		return 0, err
	}
	return aggregate.TotalHistoricalCO2(members, year), nil
}

func (s *Service) members(continent string) ([]*models.Country, error) {
	all := s.registry.All()
	if continent == "" {
		return all, nil
	}
	members, ok := aggregate.GroupByContinent(all).Lookup(strings.ToUpper(continent))
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "continent not found: "+continent)
	}
	return members, nil
}

// TopPerCapita ranks countries by per-capita emissions in year. Countries
// without data for year are not ranked.
func (s *Service) TopPerCapita(ctx context.Context, year, n int) (_ []ranking.Ranked, err error) {
	done := s.begin(ctx, opTopPerCapita, attribute.Int("year", year), attribute.Int("n", n))
	defer func() { done(err) }()

	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.validateTopN(n); err != nil {
		return nil, err
	}
	values := aggregate.PerCapitaByYear(s.registry.All(), year)
	return ranking.TopN(values.Candidates(), n), nil
}

// TopHistorical ranks countries by historical emissions up to year.
func (s *Service) TopHistorical(ctx context.Context, year, n int) (_ []ranking.Ranked, err error) {
	done := s.begin(ctx, opTopHistorical, attribute.Int("year", year), attribute.Int("n", n))
	defer func() { done(err) }()

	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.validateTopN(n); err != nil {
		return nil, err
	}
	values := aggregate.HistoricalByYear(s.registry.All(), year)
	return ranking.TopN(values.Candidates(), n), nil
}
