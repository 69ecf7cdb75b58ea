package handler

import (
	"net/url"
	"strings"

	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/platform/httputil"
	pstrings "emissions/pkg/platform/strings"
)

const defaultTopN = 10

// YearRequest is the query of the continent chart endpoints.
type YearRequest struct {
	Year int
}

// TotalsRequest is the query of GET /totals/*. An empty Continent selects
// every country.
type TotalsRequest struct {
	Year      int
	Continent string
}

// RankingRequest is the query of GET /rankings/*.
type RankingRequest struct {
	Year int
	N    int
}

// SeriesRequest is the query of GET /series/emissions. Zero From or To
// means unbounded on that side.
type SeriesRequest struct {
	Codes []string
	From  int
	To    int
}

// ParseYearRequest reads a required year.
func ParseYearRequest(values url.Values) (*YearRequest, error) {
	year, err := requiredYear(values)
	if err != nil {
		return nil, err
	}
	return &YearRequest{Year: year}, nil
}

// ParseTotalsRequest reads a required year and an optional continent.
func ParseTotalsRequest(values url.Values) (*TotalsRequest, error) {
	year, err := requiredYear(values)
	if err != nil {
		return nil, err
	}
	return &TotalsRequest{
		Year:      year,
		Continent: strings.ToUpper(strings.TrimSpace(values.Get("continent"))),
	}, nil
}

// ParseRankingRequest reads a required year and n, defaulting n to ten.
func ParseRankingRequest(values url.Values) (*RankingRequest, error) {
	year, err := requiredYear(values)
	if err != nil {
		return nil, err
	}
	n, err := httputil.QueryInt(values, "n", defaultTopN)
	if err != nil {
		return nil, err
	}
	return &RankingRequest{Year: year, N: n}, nil
}

// ParseSeriesRequest reads the country codes and optional year range.
// Codes are upper-cased and de-duplicated.
func ParseSeriesRequest(values url.Values) (*SeriesRequest, error) {
	codes := pstrings.DedupeAndTrimUpper(httputil.QueryList(values, "codes"))
	if len(codes) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "codes is required")
	}
	from, err := httputil.QueryInt(values, "from", 0)
	if err != nil {
		return nil, err
	}
	to, err := httputil.QueryInt(values, "to", 0)
	if err != nil {
		return nil, err
	}
	return &SeriesRequest{Codes: codes, From: from, To: to}, nil
}

func requiredYear(values url.Values) (int, error) {
	if strings.TrimSpace(values.Get("year")) == "" {
		return 0, dErrors.New(dErrors.CodeBadRequest, "year is required")
	}
	return httputil.QueryInt(values, "year", 0)
}
