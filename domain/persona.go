package domain

// Persona is one advisor voice configuration the conversational layer can run with.
type Persona struct {
	Key          string `json:"key" yaml:"-"`
	Name         string `json:"name" yaml:"name"`
	Voice        string `json:"voice" yaml:"voice"`
	Personality  string `json:"personality" yaml:"personality"`
	Description  string `json:"description" yaml:"description"`
	Instructions string `json:"instructions" yaml:"instructions"`
	Greeting     string `json:"greeting" yaml:"greeting"`
}
