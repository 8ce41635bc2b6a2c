// Package persona holds the advisor voice configurations the conversational
// layer can be started with.
package persona

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"wealth-advisor/domain"
)

//go:embed personas.yaml
var personasYAML []byte

var ErrUnknownPersona = errors.New("unknown persona")

type catalogFile struct {
	Default  string                    `yaml:"default"`
	Order    []string                  `yaml:"order"`
	Personas map[string]domain.Persona `yaml:"personas"`
}

// Catalog is an immutable set of personas keyed by short name.
type Catalog struct {
	defaultKey string
	order      []string
	personas   map[string]domain.Persona
}

// Parse builds a Catalog from a personas document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse personas: %w", err)
	}
	if len(f.Order) == 0 {
		return nil, errors.New("personas: order is empty")
	}
	if len(f.Order) != len(f.Personas) {
		return nil, fmt.Errorf("personas: order lists %d keys, found %d personas", len(f.Order), len(f.Personas))
	}

	c := &Catalog{
		defaultKey: f.Default,
		order:      f.Order,
		personas:   make(map[string]domain.Persona, len(f.Personas)),
	}
	for _, key := range f.Order {
		p, ok := f.Personas[key]
		if !ok {
			return nil, fmt.Errorf("personas: %q is listed but not defined", key)
		}
		if p.Name == "" || p.Voice == "" {
			return nil, fmt.Errorf("personas: %q needs a name and a voice", key)
		}
		p.Key = key
		c.personas[key] = p
	}
	if c.defaultKey == "" {
		c.defaultKey = f.Order[0]
	}
	if _, ok := c.personas[c.defaultKey]; !ok {
		return nil, fmt.Errorf("personas: default %q is not defined", c.defaultKey)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(personasYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded personas are invalid: %v", err))
	}
	return c
}

func (c *Catalog) Get(key string) (domain.Persona, error) {
	p, ok := c.personas[key]
	if !ok {
		return domain.Persona{}, fmt.Errorf("%w: %q", ErrUnknownPersona, key)
	}
	return p, nil
}

// Keys lists persona keys in catalog order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Default() domain.Persona {
	return c.personas[c.defaultKey]
}

// List returns every persona in catalog order.
func (c *Catalog) List() []domain.Persona {
	out := make([]domain.Persona, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.personas[key])
	}
	return out
}

// Select returns the persona for key, or the default when key is empty.
func (c *Catalog) Select(key string) (domain.Persona, error) {
	if key == "" {
		return c.Default(), nil
	}
	return c.Get(key)
}
