package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"dealTracker/internal/view"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func (h *Handler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateDealRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	in, err := request.ToModel()
	if !checkFields(w, r, err) {
		return
	}

	deal, err := h.deals.Create(r.Context(), in)
	if err != nil {
		serviceError(w, r, err, "create_deal")
		return
	}

	logOut("deal created", start, http.StatusCreated, zap.Int64("deal_id", deal.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("deal", dto.FromDeal(deal)))
}

func (h *Handler) ListDeals(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	deals, err := h.deals.GetAll(r.Context())
	if err != nil {
		serviceError(w, r, err, "list_deals")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" {
		deals = view.FilterDealsByStatus(deals, status)
	}

	logOut("deals listed", start, http.StatusOK, zap.Int("count", len(deals)), zap.String("status", status))
	responseWithJSON(w, http.StatusOK, toPayload("deals", dto.FromDealList(deals)))
}

func (h *Handler) GetDeal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deal, err := h.deals.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get_deal")
		return
	}

	logOut("deal fetched", start, http.StatusOK, zap.Int64("deal_id", id), zap.Bool("found", deal != nil))
	responseWithJSON(w, http.StatusOK, toPayload("deal", dto.FromDeal(deal)))
}

func (h *Handler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateDealRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	patch, err := request.ToPatch()
	if !checkFields(w, r, err) {
		return
	}

	deal, err := h.deals.Update(r.Context(), id, patch)
	if err != nil {
		serviceError(w, r, err, "update_deal")
		return
	}

	logOut("deal updated", start, http.StatusOK, zap.Int64("deal_id", id), zap.Bool("found", deal != nil))
	responseWithJSON(w, http.StatusOK, toPayload("deal", dto.FromDeal(deal)))
}

func (h *Handler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.deals.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "delete_deal")
		return
	}

	logOut("deal deleted", start, http.StatusOK, zap.Int64("deal_id", id), zap.Bool("deleted", deleted))
	responseWithJSON(w, http.StatusOK, toPayload("deleted", deleted))
}
