package domain

import "regexp"

// GenerateRequest is the provider-agnostic input for a single text generation call.
type GenerateRequest struct {
	Instructions    string
	Message         string
	MaxOutputTokens int
	Temperature     float64
}

// FallbackRule pairs a pattern with the canned answer returned when it matches.
type FallbackRule struct {
	Name    string
	Pattern *regexp.Regexp
	Answer  string
}
