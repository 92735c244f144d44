package usecase

import (
	"context"
	"strings"
)

// CredentialSlots lists the configuration names consulted for API keys, in
// priority order: numbered slots first, then the legacy single-key names.
var CredentialSlots = []string{
	"GEMINI_API_KEY1",
	"GEMINI_API_KEY2",
	"GEMINI_API_KEY3",
	"GEMINI_API_KEY",
	"GEMINI_API",
}

// Lookup resolves a named configuration value. ok is false when the name is
// unset.
type Lookup interface {
	Lookup(ctx context.Context, name string) (value string, ok bool)
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc func(ctx context.Context, name string) (string, bool)

func (f LookupFunc) Lookup(ctx context.Context, name string) (string, bool) {
	return f(ctx, name)
}

// ChainLookup consults each source in order and returns the first non-empty
// value.
type ChainLookup []Lookup

func (c ChainLookup) Lookup(ctx context.Context, name string) (string, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if v, ok := l.Lookup(ctx, name); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// BuildPool assembles the ordered credential pool for one request. Unset,
// blank and duplicate values are dropped; the first occurrence keeps its
// position. A nil lookup yields an empty pool.
func BuildPool(ctx context.Context, l Lookup, slots []string) []string {
	if l == nil {
		return nil
	}
	pool := make([]string, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, name := range slots {
		v, ok := l.Lookup(ctx, name)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		pool = append(pool, v)
	}
	return pool
}
