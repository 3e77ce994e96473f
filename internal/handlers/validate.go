package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"dealTracker/internal/service"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

func rejectField(w http.ResponseWriter, r *http.Request, field, reason string) {
	logger.Warn("HTTP: validation error",
		zap.String("field", field),
		zap.String("error", reason),
		zap.String("client_ip", r.RemoteAddr))

	handleBusinessError(w, service.NewValidationError(field, reason))
}

// parseID reads the {id} route parameter. It answers 400 itself and returns
// false when the value is not a positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		rejectField(w, r, "id", "must be a positive integer")
		return 0, false
	}
	return id, true
}

// decodeJSON rejects anything but an application/json body that decodes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !checkContentType(r, "application/json") {
		rejectField(w, r, "Content-Type", "must be application/json")
		return false
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()

	if err := decoder.Decode(dst); err != nil {
		rejectField(w, r, "body", err.Error())
		return false
	}
	return true
}

// checkFields turns a dto.FieldError into a 400 response.
func checkFields(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return true
	}
	var fe *dto.FieldError
	if errors.As(err, &fe) {
		rejectField(w, r, fe.Field, fe.Reason)
		return false
	}
	rejectField(w, r, "body", err.Error())
	return false
}
