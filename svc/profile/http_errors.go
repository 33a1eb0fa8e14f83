package profile

import "net/http"

// httpError is a status code paired with a stable machine-readable key.
type httpError struct {
	Code int
	Key  string
}

func (e httpError) Error() string {
	return e.Key
}

var (
	errBadRequest           = httpError{Code: http.StatusBadRequest, Key: "bad_request"}
	errNotFound             = httpError{Code: http.StatusNotFound, Key: "not_found"}
	errConflict             = httpError{Code: http.StatusConflict, Key: "conflict"}
	errUnsupportedMediaType = httpError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	errUnprocessableEntity  = httpError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	errInternal             = httpError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}
