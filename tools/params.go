package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Params are the raw arguments of a tool call, as decoded from JSON or
// supplied by the conversational layer.
type Params map[string]interface{}

func (p Params) Has(name string) bool {
	v, ok := p[name]
	return ok && v != nil
}

// Float coerces a numeric parameter. Numbers, json.Number and numeric
// strings are accepted.
func (p Params) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidParams, name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidParams, name)
		}
		return f, nil
	case string:
		s := strings.NewReplacer(",", "", "$", "", "%", "").Replace(strings.TrimSpace(n))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidParams, name)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %q must be a number, got %T", ErrInvalidParams, name, v)
	}
}

// Int coerces a whole-number parameter. Fractional values are rejected.
func (p Params) Int(name string) (int, error) {
	f, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q must be a whole number", ErrInvalidParams, name)
	}
	return int(f), nil
}

func (p Params) String(name string) (string, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidParams, name)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidParams, name, v)
	}
}

// JSON returns a parameter as a JSON document. Strings pass through as-is so
// the engine can report malformed input; objects are re-encoded.
func (p Params) JSON(name string) (string, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidParams, name)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q cannot be encoded: %v", ErrInvalidParams, name, err)
	}
	return string(data), nil
}

func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
