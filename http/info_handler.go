package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"wealth-advisor/domain"
	"wealth-advisor/persona"
	"wealth-advisor/repository"
)

const defaultHistoryLimit = 20

// Pinger is implemented by collaborators the health check should probe,
// such as the Redis cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type InfoHandler struct {
	personas *persona.Catalog
	active   domain.Persona
	history  repository.HistoryRepository
	pingers  map[string]Pinger
}

func NewInfoHandler(
	personas *persona.Catalog,
	active domain.Persona,
	history repository.HistoryRepository,
	pingers map[string]Pinger,
) *InfoHandler {
	return &InfoHandler{
		personas: personas,
		active:   active,
		history:  history,
		pingers:  pingers,
	}
}

type personasResponse struct {
	Active   string           `json:"active"`
	Personas []domain.Persona `json:"personas"`
}

func (h *InfoHandler) Personas(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, personasResponse{
		Active:   h.active.Key,
		Personas: h.personas.List(),
	})
}

// History lists recent tool calls, newest first. ?limit=n caps the count.
func (h *InfoHandler) History(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records := []domain.CalculationRecord{}
	if h.history != nil {
		records = append(records, h.history.Recent(limit)...)
	}
	writeJSON(w, http.StatusOK, records)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok"}
	status := http.StatusOK
	for name, p := range h.pingers {
		if resp.Checks == nil {
			resp.Checks = make(map[string]string, len(h.pingers))
		}
		if err := p.Ping(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	writeJSON(w, status, resp)
}
