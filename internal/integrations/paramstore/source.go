package paramstore

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Source resolves configuration names against Parameter Store. The name
// GEMINI_API_KEY1 under prefix /portfolio maps to /portfolio/gemini-api-key1.
// Missing parameters and lookup failures both read as unset.
type Source struct {
	getter Getter
	prefix string
	log    logrus.FieldLogger
}

func NewSource(g Getter, prefix string, log logrus.FieldLogger) (*Source, error) {
	if g == nil {
		return nil, errors.New("paramstore: getter must not be nil")
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return nil, errors.New("paramstore: parameter prefix must not be empty")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Source{getter: g, prefix: prefix, log: log}, nil
}

func (s *Source) ParameterName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return s.prefix + "/" + strings.ReplaceAll(name, "_", "-")
}

func (s *Source) Lookup(ctx context.Context, name string) (string, bool) {
	param := s.ParameterName(name)
	v, err := s.getter.GetParameter(ctx, param)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrEmptyValue) {
			s.log.WithError(err).WithField("parameter", param).Warn("parameter lookup failed")
		}
		return "", false
	}
	return v, true
}
