package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateContactRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	in, err := request.ToModel()
	if !checkFields(w, r, err) {
		return
	}

	contact, err := h.contacts.Create(r.Context(), in)
	if err != nil {
		serviceError(w, r, err, "create_contact")
		return
	}

	logOut("contact created", start, http.StatusCreated, zap.Int64("contact_id", contact.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("contact", dto.FromContact(contact)))
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	dealID, ok := parseID(w, r)
	if !ok {
		return
	}

	contacts, err := h.contacts.ListByDeal(r.Context(), dealID)
	if err != nil {
		serviceError(w, r, err, "list_contacts")
		return
	}

	logOut("contacts listed", start, http.StatusOK, zap.Int64("deal_id", dealID), zap.Int("count", len(contacts)))
	responseWithJSON(w, http.StatusOK, toPayload("contacts", dto.FromContactList(contacts)))
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	contact, err := h.contacts.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get_contact")
		return
	}

	logOut("contact fetched", start, http.StatusOK, zap.Int64("contact_id", id), zap.Bool("found", contact != nil))
	responseWithJSON(w, http.StatusOK, toPayload("contact", dto.FromContact(contact)))
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateContactRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	patch, err := request.ToPatch()
	if !checkFields(w, r, err) {
		return
	}

	contact, err := h.contacts.Update(r.Context(), id, patch)
	if err != nil {
		serviceError(w, r, err, "update_contact")
		return
	}

	logOut("contact updated", start, http.StatusOK, zap.Int64("contact_id", id), zap.Bool("found", contact != nil))
	responseWithJSON(w, http.StatusOK, toPayload("contact", dto.FromContact(contact)))
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.contacts.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "delete_contact")
		return
	}

	logOut("contact deleted", start, http.StatusOK, zap.Int64("contact_id", id), zap.Bool("deleted", deleted))
	responseWithJSON(w, http.StatusOK, toPayload("deleted", deleted))
}
