package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Error kinds carried in every error response so clients can branch on
// a machine-readable value instead of parsing messages.
const (
	KindValidation   = "validation"
	KindConflict     = "conflict"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindUnavailable  = "unavailable"
	KindInternal     = "internal"
)

type errorResponse struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{Kind: kind, Message: message}})
}

func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: apiError{
		Kind:    KindValidation,
		Message: "one or more fields are invalid",
		Fields:  fields,
	}})
}

func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errors.New("request body is empty")
	}
	return err
}

// writeUsecaseError handles the error classes common to every endpoint:
// the store being unreachable and everything unexpected.
func writeUsecaseError(w http.ResponseWriter, err error) {
	if isStoreUnavailable(err) {
		writeError(w, http.StatusServiceUnavailable, KindUnavailable, "storage is unavailable")
		return
	}

	writeError(w, http.StatusInternalServerError, KindInternal, "something went wrong")
}

func isStoreUnavailable(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}
