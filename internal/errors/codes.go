package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"

	// CodeFormat marks a character document that does not decode to an object
	CodeFormat Code = "FORMAT"
	// CodeMissingFile marks an absent template or input document
	CodeMissingFile Code = "MISSING_FILE"
	// CodeRender marks a failure while substituting or writing the sheet
	CodeRender Code = "RENDER"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument, CodeFormat:
		return http.StatusBadRequest
	case CodePermissionDenied:
		// traversal attempts are reported the same way as malformed names
		return http.StatusBadRequest
	case CodeNotFound, CodeMissingFile:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeRender, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
