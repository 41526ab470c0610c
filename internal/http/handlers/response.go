// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints: the
// error envelope, the mapping from service, schema and upstream errors to
// HTTP results, and small helpers for success bodies.
//
// Conventions:
//   - Error responses are always an ErrorResponse with a stable `kind`.
//   - `fail()` centralizes formatting and logs 5xx with the request logger.
//   - `failErr()` picks status and kind from the error value itself, so
//     handlers never switch on error identity.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "kind": "validation_error",
//	  "error": "Erro de validação",
//	  "violations": [{"path": "company.address.city.code", "message": "Required"}]
//	}
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/http/middleware"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/schema"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// Public messages that do not come from an error value.
const (
	msgValidation  = "Erro de validação"
	msgInvalidBody = "Invalid JSON body"
	msgInternal    = "Internal server error"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable kind (see errors.go constants)
	Kind string `json:"kind" example:"not_found"`
	// Human-readable message (safe to show to users)
	Error string `json:"error" example:"User not found"`
	// Field-level problems, only for validation_error
	Violations []schema.Violation `json:"violations,omitempty"`
	// Vendor error body, only for relayed upstream failures
	Upstream json.RawMessage `json:"upstream,omitempty" swaggertype:"object"`
}

// MessageResponse is returned by operations that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message" example:"User deleted successfully"`
}

// fail aborts the request with a structured error. Server errors (>=500)
// are logged with the request-scoped logger.
func fail(c *gin.Context, status int, kind, msg string) {
	abort(c, status, ErrorResponse{Kind: kind, Error: msg}, nil)
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, kind, msg string) { fail(c, status, kind, msg) }

func abort(c *gin.Context, status int, resp ErrorResponse, cause error) {
	resp.RequestID = c.Writer.Header().Get("X-Request-ID")

	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("kind", resp.Kind).
			Str("message", resp.Error)
		if cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// failErr translates err into an error response.
//
//   - schema.Violations         → 400 validation_error with the full list
//   - *nfeio.UpstreamError      → the status and kind it carries
//   - services.ErrInvalidInput  → 400 validation_error
//   - services.ErrNotFound      → 404 not_found
//   - services.ErrAlreadyExists → 400 already_exists
//   - anything else             → 500 internal_error (cause only in logs)
func failErr(c *gin.Context, err error) {
	if vs, ok := schema.AsViolations(err); ok {
		abort(c, http.StatusBadRequest, ErrorResponse{Kind: KindValidation, Error: msgValidation, Violations: vs}, nil)
		return
	}
	if ue, ok := nfeio.AsUpstream(err); ok {
		msg := ue.Message
		if msg == "" {
			msg = http.StatusText(ue.Status)
		}
		abort(c, ue.Status, ErrorResponse{Kind: string(ue.Kind), Error: msg, Upstream: ue.Body}, ue)
		return
	}
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, KindValidation, err.Error())
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		fail(c, http.StatusBadRequest, KindAlreadyExists, err.Error())
	default:
		abort(c, http.StatusInternalServerError, ErrorResponse{Kind: KindInternal, Error: msgInternal}, err)
	}
}

// badRequest is a 400 validation_error with a fixed message.
func badRequest(c *gin.Context, msg string) {
	fail(c, http.StatusBadRequest, KindValidation, msg)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// relay writes an upstream JSON body as is. Bodies that are not JSON are
// wrapped so the response stays application/json.
func relay(c *gin.Context, status int, res *nfeio.Response) {
	body := res.JSON()
	if !json.Valid(body) {
		c.JSON(status, gin.H{"data": string(res.Body)})
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}
