package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", model.Validationf("name is required"), http.StatusUnprocessableEntity},
		{"wrapped wine not found", fmt.Errorf("catalog.service.GetWine: %w", model.ErrWineNotFound), http.StatusNotFound},
		{"inventory not found", model.ErrInventoryNotFound, http.StatusNotFound},
		{"insufficient inventory", fmt.Errorf("op: %w", model.ErrInsufficientInventory), http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestErrorHidesOperationPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", fmt.Errorf("sales.service.CreateSale: %w", model.ErrWineNotFound), 404, "wine not found"},
		{"validation", fmt.Errorf("op: %w", model.Validationf("quantity must be at least 1")), 422, "quantity must be at least 1"},
		{"internal", errors.New("secret stack detail"), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body["error"])
		})
	}
}

func TestDecodeReportsValidationErrors(t *testing.T) {
	t.Parallel()

	type payload struct {
		Quantity *int `json:"quantity"`
	}

	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{"empty body", "", "request body is required"},
		{"wrong type", `{"quantity":"three"}`, "quantity must be of type int"},
		{"malformed", `{"quantity":`, "invalid request body"},
		{"trailing garbage", `{"quantity":5} garbage`, "single JSON object"},
		{"second object", `{"quantity":5}{"quantity":6}`, "single JSON object"},
		{"stray closing bracket", `{"quantity":5}]`, "single JSON object"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := Decode(req, &dst)

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantDetail)
		})
	}
}

func TestDecodeAcceptsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	var dst struct {
		Quantity *int `json:"quantity"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"quantity\":5}\n\t "))

	require.NoError(t, Decode(req, &dst))
	require.NotNil(t, dst.Quantity)
	assert.Equal(t, 5, *dst.Quantity)
}
