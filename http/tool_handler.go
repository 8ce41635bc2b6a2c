package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"wealth-advisor/tools"
)

type ToolHandler struct {
	registry *tools.Registry
}

func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{registry: registry}
}

// Invoke runs /tools/{name} with the JSON object body as parameters and
// replies with the spoken text.
func (h *ToolHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	// an empty body means a tool with no required parameters
	params := map[string]interface{}{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.registry.Execute(r.Context(), r.PathValue("name"), params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out))
}

func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.registry.List())
}
