package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"wealth-advisor/service"
	"wealth-advisor/tools"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before writing the status, so an unencodable value
// becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		if rec, ok := w.(*statusRecorder); ok {
			rec.err = err
		}
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "internal error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// statusFor maps engine and tool errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrMalformedPortfolio),
		errors.Is(err, tools.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrEmptyPortfolio):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tools.ErrUnknownTool):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody decodes a JSON request body into v, which callers pre-fill
// with defaults for fields the client may omit.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
