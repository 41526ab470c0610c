// Package handlers defines the error kinds returned in every error envelope.
//
// Kinds are stable, lowercase snake_case strings that clients can branch on.
// They supplement the HTTP status: two different kinds may share a status
// (e.g. a local validation failure and an upstream 400 are both 400).
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "kind": "already_exists",
//	  "error": "Company already exists"
//	}
package handlers

const (
	KindValidation          = "validation_error"
	KindNotFound            = "not_found"
	KindAlreadyExists       = "already_exists"
	KindUpstreamClientError = "upstream_client_error"
	KindUpstreamTimeout     = "upstream_timeout"
	KindUpstreamUnavailable = "upstream_unavailable"
	KindInternal            = "internal_error"
	KindMethodNotAllowed    = "method_not_allowed"
	KindRateLimited         = "too_many_requests"
)
