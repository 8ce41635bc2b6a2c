package service

import (
	"strings"

	"wealth-advisor/domain"
)

var topicReplacer = strings.NewReplacer(" ", "_", "-", "_")

// Education looks a topic up in the education library. Unknown topics get
// the generic entry with Found=false.
func (s *FinancialService) Education(topic string) domain.EducationTopic {
	key := topicReplacer.Replace(strings.ToLower(strings.TrimSpace(topic)))
	entry, found := s.tables.Education.lookup(key)
	entry.Key = key
	entry.Found = found
	return entry
}

// Topics lists the known education topic keys in order.
func (s *FinancialService) Topics() []string {
	return s.tables.Education.keys()
}
