package http

import (
	"fmt"
	"net/http"
	"strconv"

	"streaming-analytics/internal/aggregators"
	"streaming-analytics/internal/models"
)

const defaultTopTitlesLimit = 10

// analyticsHandler serves the dashboard read API. Every route answers from
// live aggregate state; window selection comes from the ?window query param.
type analyticsHandler struct {
	analyticsService aggregators.AnalyticsService
}

func NewAnalyticsHandler(analyticsService aggregators.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: analyticsService,
	}
}

// HandleMetrics processes GET /analytics/metrics requests.
func (h *analyticsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) error {
	window, err := windowParam(r)
	if err != nil {
		return err
	}

	summary, err := h.analyticsService.GetMetrics(r.Context(), window)
	if err != nil {
		return err
	}
	return writeJSONResponse(w, http.StatusOK, summary)
}

// HandleTopTitles processes GET /analytics/top-titles requests.
func (h *analyticsHandler) HandleTopTitles(w http.ResponseWriter, r *http.Request) error {
	window, err := windowParam(r)
	if err != nil {
		return err
	}
	n, err := intParam(r, "n", defaultTopTitlesLimit)
	if err != nil {
		return err
	}

	titles, err := h.analyticsService.GetTopTitles(r.Context(), window, n)
	if err != nil {
		return err
	}
	return writeJSONResponse(w, http.StatusOK, titles)
}

// HandleErrors processes GET /analytics/errors requests.
func (h *analyticsHandler) HandleErrors(w http.ResponseWriter, r *http.Request) error {
	window, err := windowParam(r)
	if err != nil {
		return err
	}

	breakdown, err := h.analyticsService.GetErrorBreakdown(r.Context(), window)
	if err != nil {
		return err
	}
	return writeJSONResponse(w, http.StatusOK, breakdown)
}

// HandleGeo processes GET /analytics/geo requests.
func (h *analyticsHandler) HandleGeo(w http.ResponseWriter, r *http.Request) error {
	window, err := windowParam(r)
	if err != nil {
		return err
	}

	geo, err := h.analyticsService.GetGeoDistribution(r.Context(), window)
	if err != nil {
		return err
	}
	return writeJSONResponse(w, http.StatusOK, geo)
}

// HandleDevices processes GET /analytics/devices requests.
func (h *analyticsHandler) HandleDevices(w http.ResponseWriter, r *http.Request) error {
	window, err := windowParam(r)
	if err != nil {
		return err
	}

	stats, err := h.analyticsService.GetDevicePlatformStats(r.Context(), window)
	if err != nil {
		return err
	}
	return writeJSONResponse(w, http.StatusOK, stats)
}

// HandleRecentEvents processes GET /analytics/recent-events requests.
func (h *analyticsHandler) HandleRecentEvents(w http.ResponseWriter, r *http.Request) error {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		return err
	}

	events, err := h.analyticsService.GetRecentEvents(r.Context(), limit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []*models.Event{}
	}
	return writeJSONResponse(w, http.StatusOK, events)
}

func windowParam(r *http.Request) (models.WindowSize, error) {
	raw := r.URL.Query().Get("window")
	if raw == "" {
		return models.WindowMinute, nil
	}
	window, err := models.NewWindowSizeFromString(raw)
	if err != nil {
		return "", errInvalidQueryParam(fmt.Sprintf("invalid window size: %q", raw), err)
	}
	return window, nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errInvalidQueryParam(fmt.Sprintf("%s must be a non-negative integer, got %q", name, raw), err)
	}
	return v, nil
}
