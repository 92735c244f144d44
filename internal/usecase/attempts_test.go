package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/integrations/gemini"
)

func drain(p *attemptPlan, classes ...failureClass) []step {
	var steps []step
	st, ok := p.first()
	for i := 0; ok; i++ {
		steps = append(steps, st)
		class := failureOther
		if i < len(classes) {
			class = classes[i]
		}
		st, ok = p.next(class)
	}
	return steps
}

func TestAttemptPlan_EmptyPool(t *testing.T) {
	_, ok := newAttemptPlan(0).first()
	require.False(t, ok)
}

func TestAttemptPlan_Sequences(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		classes []failureClass
		want    []step
	}{
		{
			name: "other failures rotate without retry",
			size: 3,
			want: []step{
				{attempt: attempt{key: 0, try: 1}},
				{attempt: attempt{key: 1, try: 1}},
				{attempt: attempt{key: 2, try: 1}},
			},
		},
		{
			name:    "rate limit retries once with backoff",
			size:    2,
			classes: []failureClass{failureRateLimited, failureRateLimited, failureRateLimited, failureRateLimited},
			want: []step{
				{attempt: attempt{key: 0, try: 1}},
				{attempt: attempt{key: 0, try: 2}, backoff: true},
				{attempt: attempt{key: 1, try: 1}},
				{attempt: attempt{key: 1, try: 2}, backoff: true},
			},
		},
		{
			name:    "other failure on retry rotates",
			size:    2,
			classes: []failureClass{failureRateLimited, failureOther, failureOther},
			want: []step{
				{attempt: attempt{key: 0, try: 1}},
				{attempt: attempt{key: 0, try: 2}, backoff: true},
				{attempt: attempt{key: 1, try: 1}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, drain(newAttemptPlan(tc.size), tc.classes...))
		})
	}
}

type throttled struct{}

func (throttled) Error() string     { return "throttled" }
func (throttled) RateLimited() bool { return true }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want failureClass
	}{
		{"gemini 429", &gemini.HTTPStatusError{StatusCode: http.StatusTooManyRequests}, failureRateLimited},
		{"wrapped 429", fmt.Errorf("gemini: request failed: %w", &gemini.HTTPStatusError{StatusCode: 429}), failureRateLimited},
		{"resource exhausted", &gemini.HTTPStatusError{StatusCode: 503, Status: "RESOURCE_EXHAUSTED"}, failureRateLimited},
		{"custom rate limiter", throttled{}, failureRateLimited},
		{"auth failure", &gemini.HTTPStatusError{StatusCode: http.StatusUnauthorized}, failureOther},
		{"server error", &gemini.HTTPStatusError{StatusCode: http.StatusInternalServerError}, failureOther},
		{"plain error", errors.New("too many requests"), failureOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classify(tc.err))
		})
	}
}
