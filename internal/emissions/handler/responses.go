package handler

import (
	"emissions/internal/emissions/aggregate"
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/ranking"
	"emissions/internal/emissions/service"
)

// CountryResponse is the HTTP response for GET /countries/{code}.
type CountryResponse struct {
	Code             string               `json:"code"`
	Name             string               `json:"name"`
	Continents       []string             `json:"continents"`
	ConstructionYear int                  `json:"construction_year"`
	Emissions        []YearValueResponse  `json:"emissions"`
	Population       []PopulationResponse `json:"population"`
}

// YearValueResponse is one point of a yearly series.
type YearValueResponse struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// PopulationResponse is one recorded population.
type PopulationResponse struct {
	Year       int   `json:"year"`
	Population int64 `json:"population"`
}

// BoundsResponse is the HTTP response for GET /bounds.
type BoundsResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ContinentValuesResponse is the HTTP response for GET /continents/*.
type ContinentValuesResponse struct {
	Year       int                      `json:"year"`
	Continents []ContinentValueResponse `json:"continents"`
}

// ContinentValueResponse is one continent bar.
type ContinentValueResponse struct {
	Continent string  `json:"continent"`
	Value     float64 `json:"value"`
}

// TotalResponse is the HTTP response for GET /totals/*.
type TotalResponse struct {
	Year      int     `json:"year"`
	Continent string  `json:"continent,omitempty"`
	Value     float64 `json:"value"`
}

// RankingResponse is the HTTP response for GET /rankings/*.
type RankingResponse struct {
	Year      int              `json:"year"`
	N         int              `json:"n"`
	Countries []ranking.Ranked `json:"countries"`
}

// SeriesResponse is the HTTP response for GET /series/emissions.
type SeriesResponse struct {
	From   int                     `json:"from"`
	To     int                     `json:"to"`
	Step   int                     `json:"step"`
	Series []CountrySeriesResponse `json:"series"`
}

// CountrySeriesResponse holds one country's series.
type CountrySeriesResponse struct {
	Code    string              `json:"code"`
	Name    string              `json:"name"`
	Sampled []YearValueResponse `json:"sampled"`
	Full    []YearValueResponse `json:"full"`
}

// FromCountry converts a country to its HTTP representation.
func FromCountry(c *models.Country) *CountryResponse {
	resp := &CountryResponse{
		Code:             c.Code().String(),
		Name:             c.Name(),
		Continents:       []string(c.Continents()),
		ConstructionYear: c.ConstructionYear(),
		Emissions:        []YearValueResponse{},
		Population:       []PopulationResponse{},
	}
	if resp.Continents == nil {
		resp.Continents = []string{}
	}
	for _, year := range c.EmissionYears() {
		resp.Emissions = append(resp.Emissions, YearValueResponse{Year: year, Value: c.EmissionsInYear(year)})
	}
	for _, year := range c.PopulationYears() {
		pop, _ := c.PopulationInYear(year)
		resp.Population = append(resp.Population, PopulationResponse{Year: year, Population: pop})
	}
	return resp
}

// FromLabeledValues converts continent bars to their HTTP representation.
func FromLabeledValues(year int, bars []aggregate.LabeledValue) *ContinentValuesResponse {
	resp := &ContinentValuesResponse{
		Year:       year,
		Continents: make([]ContinentValueResponse, 0, len(bars)),
	}
	for _, b := range bars {
		resp.Continents = append(resp.Continents, ContinentValueResponse{Continent: b.Label, Value: b.Value})
	}
	return resp
}

// FromSeriesResult converts a series result to its HTTP representation.
func FromSeriesResult(result *service.SeriesResult) *SeriesResponse {
	resp := &SeriesResponse{
		From:   result.From,
		To:     result.To,
		Step:   result.Step,
		Series: make([]CountrySeriesResponse, 0, len(result.Series)),
	}
	for _, s := range result.Series {
		resp.Series = append(resp.Series, CountrySeriesResponse{
			Code:    s.Code,
			Name:    s.Name,
			Sampled: fromYearValues(s.Sampled),
			Full:    fromYearValues(s.Full),
		})
	}
	return resp
}

func fromYearValues(values []aggregate.YearValue) []YearValueResponse {
	out := make([]YearValueResponse, 0, len(values))
	for _, v := range values {
		out = append(out, YearValueResponse{Year: v.Year, Value: v.Value})
	}
	return out
}
