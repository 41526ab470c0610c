package nfeio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an upstream failure.
type Kind string

const (
	KindClientError Kind = "upstream_client_error" // vendor rejected the request (400, 401)
	KindTimeout     Kind = "upstream_timeout"      // vendor answered 408
	KindUnavailable Kind = "upstream_unavailable"  // any other non-2xx, relayed as is
	KindInternal    Kind = "internal_error"        // transport or decoding failure
)

// ErrNotConfigured is returned when the base URL for an API version is
// missing from the environment.
var ErrNotConfigured = errors.New("nfeio: base url not configured")

// UpstreamError describes a failed vendor call in terms of the local HTTP
// response that should be sent back.
type UpstreamError struct {
	Status  int             // local status code
	Kind    Kind            //
	Message string          // short public message
	Body    json.RawMessage // vendor error body, only for relayed statuses
	Err     error           // cause, for logs only
}

func (e *UpstreamError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nfeio: %s (%d)", e.Kind, e.Status)
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AsUpstream extracts an *UpstreamError from err.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// classify maps a non-2xx vendor response to the local contract. 400, 401
// and 408 get fixed messages; everything else keeps the vendor status and
// body.
func classify(status int, body []byte) *UpstreamError {
	switch status {
	case http.StatusBadRequest:
		return &UpstreamError{Status: status, Kind: KindClientError, Message: "Bad Request"}
	case http.StatusUnauthorized:
		return &UpstreamError{Status: status, Kind: KindClientError, Message: "Unauthorized"}
	case http.StatusRequestTimeout:
		return &UpstreamError{Status: status, Kind: KindTimeout, Message: "Time limit exceeded"}
	}
	return &UpstreamError{
		Status: status,
		Kind:   KindUnavailable,
		Body:   relayBody(status, body),
	}
}

// relayBody keeps a JSON error body verbatim. Anything else is replaced by
// a short diagnostic object.
func relayBody(status int, body []byte) json.RawMessage {
	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	msg, _ := json.Marshal(map[string]string{
		"message": fmt.Sprintf("upstream returned HTTP %d without a JSON body", status),
	})
	return msg
}

func internal(err error) *UpstreamError {
	return &UpstreamError{
		Status:  http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: "internal error",
		Err:     err,
	}
}
