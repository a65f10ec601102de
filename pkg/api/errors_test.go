package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/taskfleet/taskfleet/pkg/services"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", services.NewValidationError("title", "required"), http.StatusBadRequest, "validation"},
		{"dependency", services.NewDependencyError("cycle"), http.StatusBadRequest, "dependency-invalid"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not-found"},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, "conflict"},
		{"state conflict", services.ErrStateConflict, http.StatusConflict, "state-conflict"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"claim unavailable", services.ErrClaimUnavailable, http.StatusConflict, "claim-unavailable"},
		{"cap exceeded", services.ErrCapExceeded, http.StatusConflict, "cap-exceeded"},
		{"retries exhausted", services.ErrRetriesExhausted, http.StatusConflict, "retries-exhausted"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}

	t.Run("wrapped errors still map", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, errors.Join(errors.New("context"), services.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
