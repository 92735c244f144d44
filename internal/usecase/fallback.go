package usecase

import (
	"strings"

	"portfolio-assistant/internal/domain"
)

// FallbackMatcher answers offline from an ordered rule table. The first rule
// whose pattern matches wins; Default is returned when nothing matches.
type FallbackMatcher struct {
	Rules   []domain.FallbackRule
	Default string
}

func NewFallbackMatcher(rules []domain.FallbackRule, def string) FallbackMatcher {
	return FallbackMatcher{Rules: rules, Default: def}
}

func (m FallbackMatcher) Match(message string) string {
	rule, ok := m.match(message)
	if !ok {
		return m.Default
	}
	return rule.Answer
}

func (m FallbackMatcher) match(message string) (domain.FallbackRule, bool) {
	message = strings.TrimSpace(message)
	for _, r := range m.Rules {
		if r.Pattern != nil && r.Pattern.MatchString(message) {
			return r, true
		}
	}
	return domain.FallbackRule{}, false
}
