package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emissions/internal/emissions/handler"
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/registry"
	"emissions/internal/emissions/service"
	"emissions/internal/platform/metrics"
	"emissions/internal/platform/middleware"
	"emissions/pkg/platform/middleware/version"
	"emissions/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg, err := registry.BuildFromRecords([]models.Record{
		{Code: "FRA", Name: "France", Continents: "EUROPE", Year: "1990", CO2: "390.2", Population: "56700000"},
		{Code: "CHN", Name: "China", Continents: "ASIA", Year: "2000", CO2: "3400", Population: "1260000000"},
		{Code: "FRA", Name: "France", Continents: "EUROPE", Year: "2000", CO2: "412.1", Population: "60900000"},
	})
	require.NoError(t, err)
	svc, err := service.New(reg, service.WithLogger(logger))
	require.NoError(t, err)

	promReg := prometheus.NewRegistry()
	return NewRouter(RouterConfig{
		Logger:         logger,
		Metrics:        metrics.New(promReg),
		Gatherer:       promReg,
		RequestTimeout: time.Second,
	}, handler.New(svc, logger))
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	testutil.Given(t, "a loaded registry", func(t *testing.T) {
		testutil.When(t, "ranking historical emissions", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/rankings/historical?year=2000&n=2"))

			testutil.Then(t, "countries are ordered by total", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				body := testutil.UnmarshalResponse[handler.RankingResponse](t, rr)
				require.Len(t, body.Countries, 2)
				assert.Equal(t, "CHN", body.Countries[0].Code)
				assert.Equal(t, "FRA", body.Countries[1].Code)
				assert.InDelta(t, 802.3, body.Countries[1].Value, 1e-9)
			})

			testutil.Then(t, "the response carries a request id", func(t *testing.T) {
				assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.Equal(t, "v1", rr.Header().Get(version.Header))
			})
		})

		testutil.When(t, "asking for an unknown country", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/DEU"))

			testutil.Then(t, "the error envelope says not found", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
			})
		})

		testutil.When(t, "asking for the bounds", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/bounds"))

			testutil.Then(t, "only construction years count", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				assert.Equal(t, &handler.BoundsResponse{Min: 1990, Max: 2000},
					testutil.UnmarshalResponse[handler.BoundsResponse](t, rr))
			})
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `{"status":"ok"}`, string(testutil.ReadBody(t, rr)))

	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/bounds"))
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	assert.True(t, strings.Contains(rr.Body.String(), `emissions_http_requests_total{method="GET",route="/v1/bounds",status="200"} 1`))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nowhere"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/v1/bounds"))
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
