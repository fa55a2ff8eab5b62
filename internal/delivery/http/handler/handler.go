package handler

import (
	"net/http"
	"sort"
	"strings"

	"maternacare/pkg/apperr"
	"maternacare/pkg/response"
)

// respondError maps the domain error taxonomy onto HTTP status codes.
// Unexpected errors get a generic message so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	message := apperr.MessageOf(err)
	switch apperr.KindOf(err) {
	case apperr.Unauthenticated:
		response.Unauthorized(w, message)
	case apperr.Forbidden:
		response.Forbidden(w, message)
	case apperr.NotFound:
		response.NotFound(w, message)
	case apperr.Conflict, apperr.Invalid:
		response.BadRequest(w, message)
	default:
		response.InternalServerError(w, message)
	}
}

// validationMessage flattens field errors into a single deterministic line.
func validationMessage(fieldErrors map[string]string) string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fieldErrors[field])
	}
	return strings.Join(parts, "; ")
}
