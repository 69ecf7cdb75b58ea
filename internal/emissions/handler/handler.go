package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"emissions/internal/emissions/aggregate"
	"emissions/internal/emissions/models"
	"emissions/internal/emissions/ranking"
	"emissions/internal/emissions/service"
	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/platform/httputil"
	"emissions/pkg/requestcontext"
)

// Service defines the interface for emissions queries.
type Service interface {
	Country(ctx context.Context, code string) (*models.Country, error)
	Bounds(ctx context.Context) (service.YearRange, error)
	ContinentPerCapita(ctx context.Context, year int) ([]aggregate.LabeledValue, error)
	ContinentHistorical(ctx context.Context, year int) ([]aggregate.LabeledValue, error)
	TotalPerCapita(ctx context.Context, year int, continent string) (float64, error)
	TotalHistorical(ctx context.Context, year int, continent string) (float64, error)
	TopPerCapita(ctx context.Context, year, n int) ([]ranking.Ranked, error)
	TopHistorical(ctx context.Context, year, n int) ([]ranking.Ranked, error)
	EmissionsSeries(ctx context.Context, q service.SeriesQuery) (*service.SeriesResult, error)
}

// Handler wires emissions endpoints to the emissions service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an emissions handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts emissions endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/countries/{code}", h.HandleGetCountry)
	r.Get("/bounds", h.HandleGetBounds)
	r.Get("/continents/per-capita", h.HandleContinentPerCapita)
	r.Get("/continents/historical", h.HandleContinentHistorical)
	r.Get("/totals/per-capita", h.HandleTotalPerCapita)
	r.Get("/totals/historical", h.HandleTotalHistorical)
	r.Get("/rankings/per-capita", h.HandleTopPerCapita)
	r.Get("/rankings/historical", h.HandleTopHistorical)
	r.Get("/series/emissions", h.HandleEmissionsSeries)
}

// HandleGetCountry handles GET /countries/{code}.
func (h *Handler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	country, err := h.service.Country(ctx, code)
	if err != nil {
		h.fail(ctx, w, "get country", err, "code", code)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCountry(country))
}

// HandleGetBounds handles GET /bounds.
func (h *Handler) HandleGetBounds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bounds, err := h.service.Bounds(ctx)
	if err != nil {
		h.fail(ctx, w, "get bounds", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &BoundsResponse{Min: bounds.Min, Max: bounds.Max})
}

// HandleContinentPerCapita handles GET /continents/per-capita.
func (h *Handler) HandleContinentPerCapita(w http.ResponseWriter, r *http.Request) {
	h.continentChart(w, r, "continent per capita", h.service.ContinentPerCapita)
}

// HandleContinentHistorical handles GET /continents/historical.
func (h *Handler) HandleContinentHistorical(w http.ResponseWriter, r *http.Request) {
	h.continentChart(w, r, "continent historical", h.service.ContinentHistorical)
}

func (h *Handler) continentChart(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	query func(context.Context, int) ([]aggregate.LabeledValue, error),
) {
	ctx := r.Context()
	req, err := ParseYearRequest(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, op, err)
		return
	}

	bars, err := query(ctx, req.Year)
	if err != nil {
		h.fail(ctx, w, op, err, "year", req.Year)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromLabeledValues(req.Year, bars))
}

// HandleTotalPerCapita handles GET /totals/per-capita.
func (h *Handler) HandleTotalPerCapita(w http.ResponseWriter, r *http.Request) {
	h.total(w, r, "total per capita", h.service.TotalPerCapita)
}

// HandleTotalHistorical handles GET /totals/historical.
func (h *Handler) HandleTotalHistorical(w http.ResponseWriter, r *http.Request) {
	h.total(w, r, "total historical", h.service.TotalHistorical)
}

func (h *Handler) total(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	query func(context.Context, int, string) (float64, error),
) {
	ctx := r.Context()
	req, err := ParseTotalsRequest(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, op, err)
		return
	}

	value, err := query(ctx, req.Year, req.Continent)
	if err != nil {
		h.fail(ctx, w, op, err, "year", req.Year, "continent", req.Continent)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TotalResponse{
		Year:      req.Year,
		Continent: req.Continent,
		Value:     value,
	})
}

// HandleTopPerCapita handles GET /rankings/per-capita.
func (h *Handler) HandleTopPerCapita(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, "top per capita", h.service.TopPerCapita)
}

// HandleTopHistorical handles GET /rankings/historical.
func (h *Handler) HandleTopHistorical(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, "top historical", h.service.TopHistorical)
}

func (h *Handler) ranking(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	query func(context.Context, int, int) ([]ranking.Ranked, error),
) {
	ctx := r.Context()
	start := time.Now()
	req, err := ParseRankingRequest(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, op, err)
		return
	}

	ranked, err := query(ctx, req.Year, req.N)
	if err != nil {
		h.fail(ctx, w, op, err, "year", req.Year, "n", req.N)
		return
	}

	h.logger.DebugContext(ctx, "ranking computed",
		"request_id", requestcontext.RequestID(ctx),
		"operation", op,
		"year", req.Year,
		"n", req.N,
		"returned", len(ranked),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, &RankingResponse{
		Year:      req.Year,
		N:         req.N,
		Countries: ranked,
	})
}

// HandleEmissionsSeries handles GET /series/emissions.
func (h *Handler) HandleEmissionsSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := ParseSeriesRequest(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, "emissions series", err)
		return
	}

	result, err := h.service.EmissionsSeries(ctx, service.SeriesQuery{
		Codes: req.Codes,
		From:  req.From,
		To:    req.To,
	})
	if err != nil {
		h.fail(ctx, w, "emissions series", err, "codes", req.Codes)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSeriesResult(result))
}

// fail logs err and writes the error envelope. Client errors log at warn.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error, attrs ...any) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	args := append([]any{
		"request_id", requestcontext.RequestID(ctx),
		"api_version", requestcontext.APIVersion(ctx).String(),
		"error", err,
	}, attrs...)
	h.logger.Log(ctx, level, op+" failed", args...)
	httputil.WriteError(w, err)
}
