package aggregate

import (
	"math"
	"slices"
	"strings"

	"emissions/internal/emissions/models"
)

// sampleDivisions is how many intervals a sampled time series is split into.
const sampleDivisions = 10

// LabeledValue is one bar of a continent chart.
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// YearValue is one point of a time series.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// ContinentPerCapita returns per-capita emissions for each continent in year.
// Labels are ascending and continents with a zero total are dropped.
func ContinentPerCapita(countries []*models.Country, year int) []LabeledValue {
	return continentBars(GroupByContinent(countries), func(members []*models.Country) float64 {
		return TotalCO2PerCapitaByYear(members, year)
	})
}

// ContinentHistorical returns historical emissions up to year for each
// continent, ordered and filtered like ContinentPerCapita.
func ContinentHistorical(countries []*models.Country, year int) []LabeledValue {
	return continentBars(GroupByContinent(countries), func(members []*models.Country) float64 {
		return TotalHistoricalCO2(members, year)
	})
}

func continentBars(groups Groups, total func([]*models.Country) float64) []LabeledValue {
	out := make([]LabeledValue, 0, len(groups))
	for _, g := range groups {
		if v := total(g.Countries); v != 0 {
			out = append(out, LabeledValue{Label: g.Continent, Value: v})
		}
	}
	slices.SortFunc(out, func(a, b LabeledValue) int {
		return strings.Compare(a.Label, b.Label)
	})
	return out
}

// SampleStep returns the step for a sampled series over [minYear, maxYear]:
// a tenth of the span rounded half to even, never less than one.
func SampleStep(minYear, maxYear int) int {
	step := int(math.RoundToEven(float64(maxYear-minYear) / sampleDivisions))
	return max(step, 1)
}

// EmissionsSeries samples EmissionsInYear from `from` to `to` inclusive every
// step years. Unobserved years read as zero. A non-positive step is treated
// as one.
func EmissionsSeries(c *models.Country, from, to, step int) []YearValue {
	step = max(step, 1)
	if to < from {
		return []YearValue{}
	}
	out := make([]YearValue, 0, (to-from)/step+1)
	for year := from; year <= to; year += step {
		out = append(out, YearValue{Year: year, Value: c.EmissionsInYear(year)})
	}
	return out
}
