// Package tools exposes the calculation engine as named tools the
// conversational layer can call with loosely typed arguments.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"wealth-advisor/domain"
	"wealth-advisor/metrics"
	"wealth-advisor/repository"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrInvalidParams = errors.New("invalid tool parameters")
)

// Handler runs a tool. A returned error that is not ErrInvalidParams is
// turned into a sentence for the client by the registry.
type Handler func(ctx context.Context, params Params) (string, error)

type ParameterDef struct {
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
}

type Tool struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Parameters  map[string]ParameterDef `json:"parameters"`
	Handler     Handler                 `json:"-"`
	// Describe maps a handler error to what the advisor says. Optional.
	Describe func(err error) string `json:"-"`
}

// Registry dispatches tool calls and memoizes their rendered output.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Tool
	cache   repository.CacheRepository
	history repository.HistoryRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewRegistry creates an empty registry. cache and history may be nil.
func NewRegistry(
	cache repository.CacheRepository,
	history repository.HistoryRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Registry {
	if cache == nil {
		cache = repository.NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		tools:   make(map[string]*Tool),
		cache:   cache,
		history: history,
		metrics: m,
		logger:  logger.Named("tools"),
	}
}

func (r *Registry) Register(tool *Tool) error {
	if tool == nil || tool.Name == "" || tool.Handler == nil {
		return errors.New("tools: a tool needs a name and a handler")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tools: %q is already registered", tool.Name)
	}
	r.tools[tool.Name] = tool
	r.logger.Debug("tool registered", zap.String("tool", tool.Name))
	return nil
}

func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs the named tool and returns what the advisor should say.
// Only an unknown tool or missing/unusable parameters produce an error;
// calculation failures come back as an explanatory sentence.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]interface{}) (string, error) {
	start := time.Now()

	tool, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	p, err := tool.prepare(params)
	if err != nil {
		r.metrics.ObserveTool(name, "invalid", time.Since(start))
		return "", err
	}

	key, err := cacheKey(name, p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if out, hit := r.cache.Get(ctx, key); hit {
		r.metrics.CacheHit(name)
		r.metrics.ObserveTool(name, "cached", time.Since(start))
		r.record(ctx, name, p, out, true)
		return out, nil
	}
	r.metrics.CacheMiss(name)

	out, err := tool.Handler(ctx, p)
	if err != nil {
		if errors.Is(err, ErrInvalidParams) {
			r.metrics.ObserveTool(name, "invalid", time.Since(start))
			return "", err
		}
		r.logger.Debug("tool failed", zap.String("tool", name), zap.Error(err))
		r.metrics.ObserveTool(name, "error", time.Since(start))
		return tool.describe(err), nil
	}

	if err := r.cache.Set(ctx, key, out); err != nil {
		r.logger.Warn("cache write failed", zap.String("tool", name), zap.Error(err))
	}
	r.record(ctx, name, p, out, false)
	r.metrics.ObserveTool(name, "ok", time.Since(start))
	return out, nil
}

func (r *Registry) record(ctx context.Context, name string, p Params, out string, cached bool) {
	if r.history == nil {
		return
	}
	err := r.history.Save(ctx, domain.CalculationRecord{
		Tool:   name,
		Params: p.clone(),
		Output: out,
		Cached: cached,
	})
	if err != nil {
		r.logger.Warn("history write failed", zap.String("tool", name), zap.Error(err))
	}
}

// prepare checks required parameters and fills in defaults on a copy.
func (t *Tool) prepare(params map[string]interface{}) (Params, error) {
	p := Params(params).clone()
	names := make([]string, 0, len(t.Parameters))
	for n := range t.Parameters {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		def := t.Parameters[n]
		if p.Has(n) {
			continue
		}
		if def.Required {
			return nil, fmt.Errorf("%w: %s requires %q", ErrInvalidParams, t.Name, n)
		}
		if def.Default != nil {
			p[n] = def.Default
		}
	}
	return p, nil
}

func (t *Tool) describe(err error) string {
	if t.Describe != nil {
		return t.Describe(err)
	}
	return describeError(err)
}

// cacheKey hashes the canonical JSON of the parameters; encoding/json
// writes map keys in sorted order.
func cacheKey(tool string, p Params) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("advisor:%s:%016x", tool, xxhash.Sum64(data)), nil
}
