package paramstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	vals  map[string]string
	err   error
	names []string
}

func (f *fakeGetter) GetParameter(_ context.Context, name string) (string, error) {
	f.names = append(f.names, name)
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.vals[name]
	if !ok {
		return "", fmt.Errorf("paramstore: get parameter %q: %w", name, ErrNotFound)
	}
	return v, nil
}

func TestNewSource_Validates(t *testing.T) {
	_, err := NewSource(nil, "/p", nil)
	require.Error(t, err)

	_, err = NewSource(&fakeGetter{}, " / ", nil)
	require.Error(t, err)
}

func TestSource_ParameterName(t *testing.T) {
	s, err := NewSource(&fakeGetter{}, "/portfolio/", nil)
	require.NoError(t, err)
	require.Equal(t, "/portfolio/gemini-api-key1", s.ParameterName("GEMINI_API_KEY1"))
	require.Equal(t, "/portfolio/gemini-api", s.ParameterName("GEMINI_API"))
}

func TestSource_Lookup(t *testing.T) {
	g := &fakeGetter{vals: map[string]string{"/portfolio/gemini-api-key2": "k2"}}
	logger, hook := test.NewNullLogger()
	s, err := NewSource(g, "/portfolio", logger)
	require.NoError(t, err)

	v, ok := s.Lookup(context.Background(), "GEMINI_API_KEY2")
	require.True(t, ok)
	require.Equal(t, "k2", v)

	_, ok = s.Lookup(context.Background(), "GEMINI_API_KEY1")
	require.False(t, ok)
	require.Empty(t, hook.AllEntries(), "missing parameters are not logged")
}

func TestSource_Lookup_ErrorIsLoggedAndUnset(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s, err := NewSource(&fakeGetter{err: errors.New("throttled")}, "/portfolio", logger)
	require.NoError(t, err)

	_, ok := s.Lookup(context.Background(), "GEMINI_API_KEY1")
	require.False(t, ok)
	require.Len(t, hook.AllEntries(), 1)
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	require.Equal(t, "/portfolio/gemini-api-key1", hook.LastEntry().Data["parameter"])
}
