package models

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// perCapitaScale converts the dataset's million-tonne emissions over a head
// count into tonnes per person.
const perCapitaScale = 1_000_000

// Country is the aggregate root for one country or territory: identity,
// continent membership and two independently sparse yearly series.
//
// Invariants:
//   - code is a valid ISOCode
//   - a year is present in a series only if a real observation was supplied
//   - the latest observation for a year replaces any earlier one
//
// A Country is not safe for concurrent mutation; the registry serializes
// ingestion.
type Country struct {
	code       ISOCode
	name       string
	continents Continents
	year       int
	emissions  map[int]float64
	population map[int]int64
	bounds     *YearBounds
}

// NewCountry builds a country from its first observed row. bounds may be nil
// when year tracking is not wanted.
func NewCountry(code, name string, continents Continents, obs Observation, bounds *YearBounds) (*Country, error) {
	iso, err := ParseISOCode(code)
	if err != nil {
		return nil, err
	}
	c := &Country{
		code:       iso,
		name:       name,
		continents: slices.Clone(continents),
		year:       obs.Year,
		emissions:  make(map[int]float64),
		population: make(map[int]int64),
		bounds:     bounds,
	}
	c.record(obs)
	c.observeConstructionYear()
	return c, nil
}

// AddYearlyData records another year of data, overwriting fields already
// recorded for that year. Fields not recorded in obs are left untouched.
//
// The shared year bounds are widened with the construction year, not obs.Year.
func (c *Country) AddYearlyData(obs Observation) {
	c.record(obs)
	c.observeConstructionYear()
}

func (c *Country) record(obs Observation) {
	if obs.HasCO2 {
		c.emissions[obs.Year] = obs.CO2
	}
	if obs.HasPopulation {
		c.population[obs.Year] = obs.Population
	}
}

func (c *Country) observeConstructionYear() {
	if c.bounds != nil {
		c.bounds.Observe(c.year)
	}
}

func (c *Country) Code() ISOCode {
	return c.code
}

func (c *Country) Name() string {
	return c.name
}

// Continents returns a copy of the membership set.
func (c *Country) Continents() Continents {
	return slices.Clone(c.continents)
}

// ConstructionYear is the year of the row the country was built from.
func (c *Country) ConstructionYear() int {
	return c.year
}

// EmissionsInYear returns the recorded emissions, or 0 when the year was not
// observed.
func (c *Country) EmissionsInYear(year int) float64 {
	return c.emissions[year]
}

// HasEmissions reports whether emissions were recorded for year.
func (c *Country) HasEmissions(year int) bool {
	_, ok := c.emissions[year]
	return ok
}

// PopulationInYear returns the recorded population and whether one exists.
func (c *Country) PopulationInYear(year int) (int64, bool) {
	p, ok := c.population[year]
	return p, ok
}

// PerCapitaInYear returns emissions per person in tonnes. ok is false when
// either series lacks the year or the recorded population is zero.
func (c *Country) PerCapitaInYear(year int) (float64, bool) {
	co2, ok := c.emissions[year]
	if !ok {
		return 0, false
	}
	pop, ok := c.population[year]
	if !ok || pop == 0 {
		return 0, false
	}
	return co2 / float64(pop) * perCapitaScale, true
}

// HistoricalCO2 sums recorded emissions for every year up to and including
// upto. Years are summed in ascending order so results are reproducible.
func (c *Country) HistoricalCO2(upto int) float64 {
	var sum float64
	for _, year := range c.EmissionYears() {
		if year > upto {
			break
		}
		sum += c.emissions[year]
	}
	return sum
}

// EmissionYears lists the years with recorded emissions, ascending.
func (c *Country) EmissionYears() []int {
	return slices.Sorted(maps.Keys(c.emissions))
}

// PopulationYears lists the years with recorded population, ascending.
func (c *Country) PopulationYears() []int {
	return slices.Sorted(maps.Keys(c.population))
}

// Emissions returns a copy of the emissions series.
func (c *Country) Emissions() map[int]float64 {
	return maps.Clone(c.emissions)
}

// Population returns a copy of the population series.
func (c *Country) Population() map[int]int64 {
	return maps.Clone(c.population)
}

// String renders name, continents and both series (years ascending),
// tab-separated. Intended for inspection, not as a wire format.
func (c *Country) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte('\t')
	b.WriteString(c.continents.String())
	b.WriteByte('\t')
	writeSeries(&b, c.EmissionYears(), func(y int) string { return formatFloat(c.emissions[y]) })
	b.WriteByte('\t')
	writeSeries(&b, c.PopulationYears(), func(y int) string { return strconv.FormatInt(c.population[y], 10) })
	return b.String()
}

func writeSeries(b *strings.Builder, years []int, value func(int) string) {
	b.WriteByte('{')
	for i, y := range years {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(y))
		b.WriteString(": ")
		b.WriteString(value(y))
	}
	b.WriteByte('}')
}

// formatFloat keeps a decimal point on whole numbers so emissions never read
// as head counts.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
