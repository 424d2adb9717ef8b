package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request validation errors
	CodeInvalidWidth   Code = "INVALID_WIDTH"
	CodeInvalidHeight  Code = "INVALID_HEIGHT"
	CodeInvalidCommits Code = "INVALID_COMMITS"
	CodeInvalidLevel   Code = "INVALID_LEVEL"
	CodeInvalidTheme   Code = "INVALID_THEME"
	CodeInvalidSeed    Code = "INVALID_SEED"
	CodeMissingUser    Code = "MISSING_USER"

	// Upstream errors
	CodeUserNotFound Code = "USER_NOT_FOUND"
	CodeUpstream     Code = "UPSTREAM_ERROR"

	// Rendering errors
	CodeRender Code = "RENDER_ERROR"
)

// HTTPStatus maps a code to its HTTP response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidWidth, CodeInvalidHeight, CodeInvalidCommits,
		CodeInvalidLevel, CodeInvalidTheme, CodeInvalidSeed, CodeMissingUser:
		return http.StatusBadRequest
	case CodeUserNotFound:
		return http.StatusNotFound
	case CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
