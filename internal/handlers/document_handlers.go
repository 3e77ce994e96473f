package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateDocumentRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	in, err := request.ToModel()
	if !checkFields(w, r, err) {
		return
	}

	doc, err := h.documents.Create(r.Context(), in)
	if err != nil {
		serviceError(w, r, err, "create_document")
		return
	}

	logOut("document created", start, http.StatusCreated, zap.Int64("document_id", doc.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("document", dto.FromDocument(doc)))
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	dealID, ok := parseID(w, r)
	if !ok {
		return
	}

	docs, err := h.documents.ListByDeal(r.Context(), dealID)
	if err != nil {
		serviceError(w, r, err, "list_documents")
		return
	}

	logOut("documents listed", start, http.StatusOK, zap.Int64("deal_id", dealID), zap.Int("count", len(docs)))
	responseWithJSON(w, http.StatusOK, toPayload("documents", dto.FromDocumentList(docs)))
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	doc, err := h.documents.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get_document")
		return
	}

	logOut("document fetched", start, http.StatusOK, zap.Int64("document_id", id), zap.Bool("found", doc != nil))
	responseWithJSON(w, http.StatusOK, toPayload("document", dto.FromDocument(doc)))
}

func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateDocumentRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	patch, err := request.ToPatch()
	if !checkFields(w, r, err) {
		return
	}

	doc, err := h.documents.Update(r.Context(), id, patch)
	if err != nil {
		serviceError(w, r, err, "update_document")
		return
	}

	logOut("document updated", start, http.StatusOK, zap.Int64("document_id", id), zap.Bool("found", doc != nil))
	responseWithJSON(w, http.StatusOK, toPayload("document", dto.FromDocument(doc)))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.documents.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "delete_document")
		return
	}

	logOut("document deleted", start, http.StatusOK, zap.Int64("document_id", id), zap.Bool("deleted", deleted))
	responseWithJSON(w, http.StatusOK, toPayload("deleted", deleted))
}
