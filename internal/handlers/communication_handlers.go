package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func (h *Handler) CreateCommunication(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateCommunicationRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	in, err := request.ToModel()
	if !checkFields(w, r, err) {
		return
	}

	comm, err := h.communications.Create(r.Context(), in)
	if err != nil {
		serviceError(w, r, err, "create_communication")
		return
	}

	logOut("communication created", start, http.StatusCreated, zap.Int64("communication_id", comm.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("communication", dto.FromCommunication(comm)))
}

func (h *Handler) ListCommunications(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	dealID, ok := parseID(w, r)
	if !ok {
		return
	}

	comms, err := h.communications.ListByDeal(r.Context(), dealID)
	if err != nil {
		serviceError(w, r, err, "list_communications")
		return
	}

	logOut("communications listed", start, http.StatusOK, zap.Int64("deal_id", dealID), zap.Int("count", len(comms)))
	responseWithJSON(w, http.StatusOK, toPayload("communications", dto.FromCommunicationList(comms)))
}

func (h *Handler) GetCommunication(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	comm, err := h.communications.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get_communication")
		return
	}

	logOut("communication fetched", start, http.StatusOK, zap.Int64("communication_id", id), zap.Bool("found", comm != nil))
	responseWithJSON(w, http.StatusOK, toPayload("communication", dto.FromCommunication(comm)))
}

func (h *Handler) UpdateCommunication(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateCommunicationRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	patch, err := request.ToPatch()
	if !checkFields(w, r, err) {
		return
	}

	comm, err := h.communications.Update(r.Context(), id, patch)
	if err != nil {
		serviceError(w, r, err, "update_communication")
		return
	}

	logOut("communication updated", start, http.StatusOK, zap.Int64("communication_id", id), zap.Bool("found", comm != nil))
	responseWithJSON(w, http.StatusOK, toPayload("communication", dto.FromCommunication(comm)))
}

func (h *Handler) DeleteCommunication(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.communications.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "delete_communication")
		return
	}

	logOut("communication deleted", start, http.StatusOK, zap.Int64("communication_id", id), zap.Bool("deleted", deleted))
	responseWithJSON(w, http.StatusOK, toPayload("deleted", deleted))
}
