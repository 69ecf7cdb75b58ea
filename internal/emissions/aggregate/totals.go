package aggregate

import (
	"emissions/internal/emissions/models"
)

const perCapitaScale = 1_000_000

// TotalHistoricalCO2 sums HistoricalCO2(year) over countries, counting each
// country once even when it is listed several times.
func TotalHistoricalCO2(countries []*models.Country, year int) float64 {
	var sum float64
	for _, c := range unique(countries) {
		sum += c.HistoricalCO2(year)
	}
	return sum
}

// TotalCO2PerCapitaByYear divides the summed emissions by the summed
// population of the countries that recorded both for year, in tonnes per
// person. Countries missing either series are left out of both sums. Returns 0
// when nothing qualifies.
func TotalCO2PerCapitaByYear(countries []*models.Country, year int) float64 {
	var (
		co2 float64
		pop int64
	)
	for _, c := range unique(countries) {
		p, ok := c.PopulationInYear(year)
		if !ok || !c.HasEmissions(year) {
			continue
		}
		co2 += c.EmissionsInYear(year)
		pop += p
	}
	if pop == 0 {
		return 0
	}
	return co2 / float64(pop) * perCapitaScale
}

// unique drops repeated countries by identity, keeping first-seen order.
func unique(countries []*models.Country) []*models.Country {
	seen := make(map[*models.Country]struct{}, len(countries))
	out := make([]*models.Country, 0, len(countries))
	for _, c := range countries {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
