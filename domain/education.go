package domain

type EducationTopic struct {
	Key       string   `json:"key" yaml:"-"`
	Title     string   `json:"title" yaml:"title"`
	KeyPoints []string `json:"key_points" yaml:"key_points"`
	Example   string   `json:"example" yaml:"example"`
	Found     bool     `json:"found" yaml:"-"` // false when the generic entry was returned
}
