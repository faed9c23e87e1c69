// Package httpx holds the JSON plumbing shared by every module handler.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/georgemunganga/cellar-backend/internal/logger"
	"github.com/georgemunganga/cellar-backend/internal/model"
)

func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Decode reads a single JSON value into dst. Any failure, including data
// trailing the value, is a validation error.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			return model.Validationf("request body must contain a single JSON object")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return model.Validationf("request body is required")
	case errors.As(err, &typeErr):
		return model.Validationf("%s must be of type %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &syntaxErr):
		return model.Validationf("malformed JSON at offset %d", syntaxErr.Offset)
	default:
		return model.Validationf("invalid request body: %s", err.Error())
	}
}

// StatusFor maps a service error onto its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrWineNotFound), errors.Is(err, model.ErrInventoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientInventory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"error": detail}. Internal errors are logged and
// their text is not exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	Respond(w, status, map[string]string{"error": detail(err, status)})
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "unhandled error", logger.ErrorF(err))
	}
}

func detail(err error, status int) string {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Detail
	}
	for _, sentinel := range []error{
		model.ErrWineNotFound,
		model.ErrInventoryNotFound,
		model.ErrInsufficientInventory,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return http.StatusText(status)
}
