package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"emissions/internal/emissions/aggregate"
	"emissions/internal/emissions/handler/mocks"
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/ranking"
	"emissions/internal/emissions/service"
	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/emissions-mocks.go -package=mocks Service
type EmissionsHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestEmissionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EmissionsHandlerSuite))
}

func (s *EmissionsHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *EmissionsHandlerSuite) get(path string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, path))
}

func (s *EmissionsHandlerSuite) TestGetCountry() {
	s.Run("returns the country series", func() {
		obs, err := models.ParseObservation("1990", "390.2", "56700000")
		s.Require().NoError(err)
		fra, err := models.NewCountry("FRA", "France", models.NewContinents("EUROPE"), obs, models.NewYearBounds())
		s.Require().NoError(err)
		later, err := models.ParseObservation("2000", "412.1", "")
		s.Require().NoError(err)
		fra.AddYearlyData(later)

		s.service.EXPECT().Country(gomock.Any(), "FRA").Return(fra, nil)

		resp := s.get("/countries/FRA")
		testutil.AssertStatusOK(s.T(), resp)
		body := testutil.UnmarshalResponse[CountryResponse](s.T(), resp)
		s.Equal("FRA", body.Code)
		s.Equal("France", body.Name)
		s.Equal([]string{"EUROPE"}, body.Continents)
		s.Equal(1990, body.ConstructionYear)
		s.Equal([]YearValueResponse{{Year: 1990, Value: 390.2}, {Year: 2000, Value: 412.1}}, body.Emissions)
		s.Equal([]PopulationResponse{{Year: 1990, Population: 56700000}}, body.Population)
	})

	s.Run("maps not found", func() {
		s.service.EXPECT().Country(gomock.Any(), "DEU").
			Return(nil, dErrors.New(dErrors.CodeNotFound, "country not found: DEU"))

		resp := s.get("/countries/DEU")
		testutil.AssertStatusAndError(s.T(), resp, http.StatusNotFound, "not_found")
	})

	s.Run("hides internal error details", func() {
		s.service.EXPECT().Country(gomock.Any(), "CHN").
			Return(nil, dErrors.New(dErrors.CodeInternal, "registry corrupted"))

		resp := s.get("/countries/CHN")
		s.Equal(http.StatusInternalServerError, resp.Code)
		body := testutil.UnmarshalErrorResponse(s.T(), resp)
		s.Equal("internal_error", body["error"])
		s.NotContains(body, "error_description")
	})
}

func (s *EmissionsHandlerSuite) TestGetBounds() {
	s.service.EXPECT().Bounds(gomock.Any()).Return(service.YearRange{Min: 1750, Max: 2020}, nil)

	resp := s.get("/bounds")
	testutil.AssertStatusOK(s.T(), resp)
	s.Equal(&BoundsResponse{Min: 1750, Max: 2020}, testutil.UnmarshalResponse[BoundsResponse](s.T(), resp))
}

func (s *EmissionsHandlerSuite) TestContinentCharts() {
	s.Run("per capita", func() {
		s.service.EXPECT().ContinentPerCapita(gomock.Any(), 2007).Return([]aggregate.LabeledValue{
			{Label: "ASIA", Value: 4.2},
			{Label: "EUROPE", Value: 7.9},
		}, nil)

		resp := s.get("/continents/per-capita?year=2007")
		testutil.AssertStatusOK(s.T(), resp)
		body := testutil.UnmarshalResponse[ContinentValuesResponse](s.T(), resp)
		s.Equal(2007, body.Year)
		s.Equal([]ContinentValueResponse{
			{Continent: "ASIA", Value: 4.2},
			{Continent: "EUROPE", Value: 7.9},
		}, body.Continents)
	})

	s.Run("historical with no bars is an empty list", func() {
		s.service.EXPECT().ContinentHistorical(gomock.Any(), 1800).Return([]aggregate.LabeledValue{}, nil)

		resp := s.get("/continents/historical?year=1800")
		testutil.AssertStatusOK(s.T(), resp)
		s.JSONEq(`{"year":1800,"continents":[]}`, string(testutil.ReadBody(s.T(), resp)))
	})

	s.Run("year is required", func() {
		resp := s.get("/continents/per-capita")
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, "bad_request")
	})

	s.Run("year must be an integer", func() {
		resp := s.get("/continents/historical?year=last")
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, "bad_request")
	})
}

func (s *EmissionsHandlerSuite) TestTotals() {
	s.Run("continent is normalized", func() {
		s.service.EXPECT().TotalHistorical(gomock.Any(), 2000, "EUROPE").Return(4602.3, nil)

		resp := s.get("/totals/historical?year=2000&continent=%20europe")
		testutil.AssertStatusOK(s.T(), resp)
		s.Equal(&TotalResponse{Year: 2000, Continent: "EUROPE", Value: 4602.3},
			testutil.UnmarshalResponse[TotalResponse](s.T(), resp))
	})

	s.Run("without continent covers every country", func() {
		s.service.EXPECT().TotalPerCapita(gomock.Any(), 2000, "").Return(3.5, nil)

		resp := s.get("/totals/per-capita?year=2000")
		testutil.AssertStatusOK(s.T(), resp)
		s.JSONEq(`{"year":2000,"value":3.5}`, string(testutil.ReadBody(s.T(), resp)))
	})

	s.Run("validation errors pass through", func() {
		s.service.EXPECT().TotalPerCapita(gomock.Any(), -1, "").
			Return(0.0, dErrors.New(dErrors.CodeValidation, "year must be positive"))

		resp := s.get("/totals/per-capita?year=-1")
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
		body := testutil.UnmarshalErrorResponse(s.T(), resp)
		s.Equal("validation_error", body["error"])
		s.Equal("year must be positive", body["error_description"])
	})
}

func (s *EmissionsHandlerSuite) TestRankings() {
	s.Run("n defaults to ten", func() {
		s.service.EXPECT().TopHistorical(gomock.Any(), 2020, 10).Return([]ranking.Ranked{
			{Code: "USA", Value: 416723.0},
			{Code: "CHN", Value: 235593.1},
		}, nil)

		resp := s.get("/rankings/historical?year=2020")
		testutil.AssertStatusOK(s.T(), resp)
		body := testutil.UnmarshalResponse[RankingResponse](s.T(), resp)
		s.Equal(10, body.N)
		s.Equal([]ranking.Ranked{{Code: "USA", Value: 416723.0}, {Code: "CHN", Value: 235593.1}}, body.Countries)
	})

	s.Run("explicit n", func() {
		s.service.EXPECT().TopPerCapita(gomock.Any(), 2007, 3).Return([]ranking.Ranked{{Code: "QAT", Value: 51.6}}, nil)

		resp := s.get("/rankings/per-capita?year=2007&n=3")
		testutil.AssertStatusOK(s.T(), resp)
		body := testutil.UnmarshalResponse[RankingResponse](s.T(), resp)
		s.Equal(3, body.N)
		s.Len(body.Countries, 1)
	})

	s.Run("bad n", func() {
		resp := s.get("/rankings/per-capita?year=2007&n=many")
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, "bad_request")
	})
}

func (s *EmissionsHandlerSuite) TestEmissionsSeries() {
	s.Run("passes normalized codes and range", func() {
		s.service.EXPECT().EmissionsSeries(gomock.Any(), service.SeriesQuery{
			Codes: []string{"FRA", "RUS"},
			From:  1990,
			To:    2000,
		}).Return(&service.SeriesResult{
			From: 1990,
			To:   2000,
			Step: 1,
			Series: []service.CountrySeries{{
				Code:    "FRA",
				Name:    "France",
				Sampled: []aggregate.YearValue{{Year: 1990, Value: 390.2}},
				Full:    []aggregate.YearValue{{Year: 1990, Value: 390.2}},
			}},
		}, nil)

		resp := s.get("/series/emissions?codes=fra,RUS,%20fra&from=1990&to=2000")
		testutil.AssertStatusOK(s.T(), resp)
		body := testutil.UnmarshalResponse[SeriesResponse](s.T(), resp)
		s.Equal(1, body.Step)
		s.Require().Len(body.Series, 1)
		s.Equal([]YearValueResponse{{Year: 1990, Value: 390.2}}, body.Series[0].Sampled)
	})

	s.Run("codes are required", func() {
		resp := s.get("/series/emissions?from=1990")
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, "bad_request")
	})
}

func (s *EmissionsHandlerSuite) TestFailureLogsCarryRequestID() {
	var buf bytes.Buffer
	router := chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(&buf, nil))).Register(router)

	s.service.EXPECT().Bounds(gomock.Any()).Return(service.YearRange{}, dErrors.New(dErrors.CodeNotFound, "no years recorded"))

	req := testutil.WithRequestID(testutil.NewRequest(s.T(), http.MethodGet, "/bounds"), "req-42")
	resp := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(s.T(), resp, http.StatusNotFound, "not_found")
	s.Contains(buf.String(), "request_id=req-42")
	s.Contains(buf.String(), `msg="get bounds failed"`)
}
