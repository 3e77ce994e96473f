package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const serviceName = "deal-tracker"

func (h *Handler) DealStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	stats, err := h.deals.Stats(r.Context())
	if err != nil {
		serviceError(w, r, err, "deal_stats")
		return
	}

	logOut("deal stats computed", start, http.StatusOK, zap.Int("total", stats.Total))
	responseWithJSON(w, http.StatusOK, toPayload("stats", stats))
}

func (h *Handler) DealOverview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	overview, err := h.overview.Deal(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "deal_overview")
		return
	}

	logOut("deal overview built", start, http.StatusOK, zap.Int64("deal_id", id), zap.Bool("found", overview != nil))
	responseWithJSON(w, http.StatusOK, toPayload("overview", dto.FromOverview(overview)))
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: health check")

	if err := h.health.HealthCheck(r.Context()); err != nil {
		logger.Warn("HTTP: service is unhealthy", zap.Error(err))
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unavailable"),
			toPayload("service", serviceName),
		)
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("service", serviceName),
		toPayload("time", time.Now().UTC().Format(time.RFC3339)),
	)
}
