package aggregate

import (
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/ranking"
)

// CountryValue is one country's result. Present is false when the value is
// missing, which is distinct from an observed zero.
type CountryValue struct {
	Country *models.Country
	Value   float64
	Present bool
}

// Values holds per-country results in input order.
type Values []CountryValue

// PerCapitaByYear applies PerCapitaInYear to every country.
func PerCapitaByYear(countries []*models.Country, year int) Values {
	out := make(Values, 0, len(countries))
	for _, c := range countries {
		v, ok := c.PerCapitaInYear(year)
		out = append(out, CountryValue{Country: c, Value: v, Present: ok})
	}
	return out
}

// HistoricalByYear applies HistoricalCO2 to every country. Every entry is
// present.
func HistoricalByYear(countries []*models.Country, year int) Values {
	out := make(Values, 0, len(countries))
	for _, c := range countries {
		out = append(out, CountryValue{Country: c, Value: c.HistoricalCO2(year), Present: true})
	}
	return out
}

// Lookup returns the value recorded for c by identity.
func (v Values) Lookup(c *models.Country) (float64, bool) {
	for _, cv := range v {
		if cv.Country == c {
			return cv.Value, cv.Present
		}
	}
	return 0, false
}

// Candidates converts present values into ranking candidates. Missing values
// never take a ranking slot.
func (v Values) Candidates() []ranking.Candidate {
	out := make([]ranking.Candidate, 0, len(v))
	for _, cv := range v {
		if !cv.Present {
			continue
		}
		out = append(out, ranking.Candidate{
			Code:  cv.Country.Code().String(),
			Name:  cv.Country.Name(),
			Value: cv.Value,
		})
	}
	return out
}
