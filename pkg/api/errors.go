package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/taskfleet/pkg/services"
)

// errorBody is the uniform error envelope: a short machine-readable code and
// a human message
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps service-layer errors to HTTP responses
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: validErr.Error()})
		return
	}
	var depErr *services.DependencyError
	if errors.As(err, &depErr) {
		c.JSON(http.StatusBadRequest, errorBody{Code: "dependency-invalid", Message: depErr.Error()})
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{Code: "not-found", Message: "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody{Code: "conflict", Message: "resource already exists"})
	case errors.Is(err, services.ErrStateConflict):
		c.JSON(http.StatusConflict, errorBody{Code: "state-conflict", Message: "transition precondition not met"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody{Code: "forbidden", Message: "actor is not the task holder"})
	case errors.Is(err, services.ErrClaimUnavailable):
		c.JSON(http.StatusConflict, errorBody{Code: "claim-unavailable", Message: "task is not claimable"})
	case errors.Is(err, services.ErrCapExceeded):
		c.JSON(http.StatusConflict, errorBody{Code: "cap-exceeded", Message: "agent concurrency cap reached"})
	case errors.Is(err, services.ErrRetriesExhausted):
		c.JSON(http.StatusConflict, errorBody{Code: "retries-exhausted", Message: "retry budget exhausted"})
	default:
		slog.Error("Unexpected service error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, errorBody{Code: "internal", Message: "internal server error"})
	}
}
