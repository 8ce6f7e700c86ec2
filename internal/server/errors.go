package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/errors"
	"github.com/matzehuels/coursegraph/pkg/observability"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	RequestID string   `json:"request_id"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code.Kind() {
	case errors.KindInvalid:
		return http.StatusBadRequest
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindStructural:
		return http.StatusUnprocessableEntity
	case errors.KindUnsupported:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// toResponse converts err to a response body and status. Errors without a
// code are internal; their text is not exposed.
func toResponse(err error) (ErrorResponse, int) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return ErrorResponse{
			Code:    string(errors.ErrCodeInvalidInput),
			Message: "request body too large",
		}, http.StatusRequestEntityTooLarge
	}

	var e *errors.Error
	if !stderrors.As(err, &e) || statusFor(e.Code) == http.StatusInternalServerError {
		return ErrorResponse{
			Code:    string(errors.ErrCodeInternal),
			Message: "internal server error",
		}, http.StatusInternalServerError
	}

	resp := ErrorResponse{Code: string(e.Code), Message: e.Message}
	var verr *catalog.ValidationError
	switch {
	case stderrors.As(err, &verr):
		resp.Details = verr.Problems
	case e.Cause != nil:
		resp.Details = []string{e.Cause.Error()}
	}
	return resp, statusFor(e.Code)
}

// writeError writes err as a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := toResponse(err)
	resp.RequestID = RequestIDFromContext(r.Context())

	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), resp.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", resp.RequestID)
	} else {
		s.logger.Debug("request rejected", "code", resp.Code, "err", err, "request_id", resp.RequestID)
	}

	writeJSON(w, status, resp)
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
