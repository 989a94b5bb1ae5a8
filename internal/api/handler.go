package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/aqipulse/aqipulse/internal/aqi"
	"github.com/aqipulse/aqipulse/internal/domain/dto"
	"github.com/aqipulse/aqipulse/internal/provider"
	"github.com/aqipulse/aqipulse/internal/service"
	"github.com/aqipulse/aqipulse/internal/store"
)

var validate = validator.New()

// Handler provides HTTP handlers for the daily summary endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Serve cached results for default queries when fresh ones exist
//   - Run the fetch/normalize/aggregate pipeline otherwise
//   - Translate pipeline failures into appropriate HTTP status codes
type Handler struct {
	svc         service.SummaryService
	store       *store.MemoryStore
	home        provider.Location
	defaultDays int
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc: the summary pipeline.
//   - st: cache of background refresh results; may be nil to disable
//     cached answers.
//   - home: location used when a query omits coordinates.
//   - defaultDays: window applied when a query omits days.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.SummaryService, st *store.MemoryStore, home provider.Location, defaultDays int) *Handler {
	return &Handler{svc: svc, store: st, home: home, defaultDays: defaultDays}
}

// summaryQuery carries the validated query parameters of the summary
// endpoints.
type summaryQuery struct {
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lon  float64 `validate:"gte=-180,lte=180"`
	Days int     `validate:"gte=1,lte=30"`
}

// parseSummaryQuery reads lat/lon/days, falling back to the configured
// home location and default window. The second return value reports
// whether the caller set any parameter explicitly; only fully-default
// queries may be answered from the cache.
func (h *Handler) parseSummaryQuery(c *gin.Context) (summaryQuery, bool, error) {
	q := summaryQuery{Lat: h.home.Lat, Lon: h.home.Lon, Days: h.defaultDays}
	explicit := false

	if s := c.Query("lat"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, true, errors.New("lat must be a number")
		}
		q.Lat = v
		explicit = true
	}
	if s := c.Query("lon"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, true, errors.New("lon must be a number")
		}
		q.Lon = v
		explicit = true
	}
	if s := c.Query("days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return q, true, errors.New("days must be an integer")
		}
		q.Days = v
		explicit = true
	}

	if err := validate.Struct(q); err != nil {
		return q, explicit, err
	}
	return q, explicit, nil
}

// GetSummary handles GET /api/v1/summary requests.
//
// Query Parameters:
//   - lat (float, optional): Latitude in [-90, 90]. Defaults to the home location.
//   - lon (float, optional): Longitude in [-180, 180]. Defaults to the home location.
//   - days (int, optional): Observation window in days, 1..30. Defaults to DEFAULT_DAYS.
//
// Responses:
//   - 200 OK: One summary per day with data; an empty list when the window held no readings.
//   - 400 Bad Request: Malformed or out-of-range query parameters.
//   - 422 Unprocessable Entity: Upstream returned structurally bad data.
//   - 502 Bad Gateway: Upstream could not be reached or answered abnormally.
//
// GetSummary godoc
// @Summary      Daily air quality summaries
// @Description  Returns one AQI and pollutant summary per calendar day over the requested window
// @Tags         summary
// @Produce      json
// @Param        lat   query     number  false  "Latitude"   example(12.9716)
// @Param        lon   query     number  false  "Longitude"  example(77.5946)
// @Param        days  query     int     false  "Window in days (1-30)"  example(10)
// @Success      200   {object}  dto.SummaryResponse    "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse      "Corrupt upstream data"
// @Failure      502   {object}  dto.ErrorResponse      "Upstream unavailable"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	// ─── Validate query params ────────────────────────────────
	q, explicit, err := h.parseSummaryQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query parameters", err))
		return
	}

	// ─── Serve the cached run for default queries ─────────────
	if !explicit && h.store != nil {
		if entry, err := h.store.Latest(h.home.Key()); err == nil {
			c.JSON(http.StatusOK, dto.SummaryResponse{
				Lat:       q.Lat,
				Lon:       q.Lon,
				Days:      q.Days,
				Count:     len(entry.Summaries),
				Source:    dto.SourceCache,
				Summaries: entry.Summaries,
			})
			return
		}
	}

	// ─── Run the pipeline (with request context) ──────────────
	summaries, err := h.svc.DailySummaries(c.Request.Context(), provider.Location{Lat: q.Lat, Lon: q.Lon}, q.Days)
	if err != nil {
		h.renderPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Lat:       q.Lat,
		Lon:       q.Lon,
		Days:      q.Days,
		Count:     len(summaries),
		Source:    dto.SourceLive,
		Summaries: summaries,
	})
}

// GetOverview handles GET /api/v1/summary/overview requests.
//
// Same parameters and error contract as GetSummary, with run
// statistics attached when the window held any data.
//
// GetOverview godoc
// @Summary      Daily summaries with statistics
// @Description  Returns the daily summaries plus average AQI, average PM2.5, and best/worst day
// @Tags         summary
// @Produce      json
// @Param        lat   query     number  false  "Latitude"   example(12.9716)
// @Param        lon   query     number  false  "Longitude"  example(77.5946)
// @Param        days  query     int     false  "Window in days (1-30)"  example(10)
// @Success      200   {object}  dto.OverviewResponse   "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse      "Corrupt upstream data"
// @Failure      502   {object}  dto.ErrorResponse      "Upstream unavailable"
// @Router       /api/v1/summary/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	q, explicit, err := h.parseSummaryQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query parameters", err))
		return
	}

	if !explicit && h.store != nil {
		if entry, err := h.store.Latest(h.home.Key()); err == nil {
			c.JSON(http.StatusOK, dto.OverviewResponse{
				Lat:       q.Lat,
				Lon:       q.Lon,
				Days:      q.Days,
				Count:     len(entry.Summaries),
				Source:    dto.SourceCache,
				Summaries: entry.Summaries,
				Stats:     entry.Stats,
			})
			return
		}
	}

	summaries, stats, err := h.svc.Overview(c.Request.Context(), provider.Location{Lat: q.Lat, Lon: q.Lon}, q.Days)
	if err != nil {
		h.renderPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OverviewResponse{
		Lat:       q.Lat,
		Lon:       q.Lon,
		Days:      q.Days,
		Count:     len(summaries),
		Source:    dto.SourceLive,
		Summaries: summaries,
		Stats:     stats,
	})
}

// GetClassify handles GET /api/v1/classify requests.
//
// Query Parameters:
//   - aqi (int, required): Index value to classify.
//
// Responses:
//   - 200 OK: The qualitative label; off-scale values classify as "Unknown".
//   - 400 Bad Request: Missing or non-integer aqi.
//
// GetClassify godoc
// @Summary      Classify an AQI value
// @Description  Maps an air quality index value to its qualitative category; values off the 1-5 scale map to Unknown
// @Tags         summary
// @Produce      json
// @Param        aqi  query      int  true  "Index value"  example(3)
// @Success      200  {object}   dto.ClassifyResponse  "Success"
// @Failure      400  {object}   dto.ErrorResponse     "Bad Request"
// @Router       /api/v1/classify [get]
func (h *Handler) GetClassify(c *gin.Context) {
	s := c.Query("aqi")
	if s == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("aqi is required", nil))
		return
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("aqi must be an integer", err))
		return
	}

	c.JSON(http.StatusOK, dto.ClassifyResponse{AQI: v, Label: aqi.Label(v)})
}

// renderPipelineError maps pipeline failures onto the API's status
// codes: transport-level failures are the upstream's fault (502),
// structurally bad payloads are unprocessable (422), anything else is
// a plain 500.
func (h *Handler) renderPipelineError(c *gin.Context, err error) {
	var tErr *provider.TransportError
	if errors.As(err, &tErr) {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("upstream air quality fetch failed", err))
		return
	}

	var mErr *aqi.MalformedRecordError
	if errors.As(err, &mErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("upstream returned a malformed record", err))
		return
	}

	var iErr *aqi.IncompleteBucketError
	if errors.As(err, &iErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("aggregation bucket incomplete", err))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build daily summaries", err))
}
