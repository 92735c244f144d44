package usecase

import "errors"

const maxTriesPerKey = 2

type failureClass int

const (
	failureOther failureClass = iota
	failureRateLimited
)

func (c failureClass) String() string {
	if c == failureRateLimited {
		return "rate_limited"
	}
	return "other"
}

type rateLimiter interface {
	RateLimited() bool
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// classify reports whether err signals throttling. Errors carrying neither a
// RateLimited method nor an HTTP status are treated as other failures.
func classify(err error) failureClass {
	var rl rateLimiter
	if errors.As(err, &rl) && rl.RateLimited() {
		return failureRateLimited
	}
	var sc httpStatusCoder
	if errors.As(err, &sc) && sc.HTTPStatusCode() == 429 {
		return failureRateLimited
	}
	return failureOther
}

// attempt identifies one remote call: which pool entry, and which try on it
// (1-based).
type attempt struct {
	key int
	try int
}

// step is the next action a driver should take.
type step struct {
	attempt
	backoff bool
}

// attemptPlan yields the attempt sequence for a pool of the given size: one
// try per key, plus a single same-key retry after a rate-limited first try.
type attemptPlan struct {
	size int
	cur  attempt
}

func newAttemptPlan(size int) *attemptPlan {
	return &attemptPlan{size: size}
}

func (p *attemptPlan) first() (step, bool) {
	if p.size <= 0 {
		return step{}, false
	}
	p.cur = attempt{key: 0, try: 1}
	return step{attempt: p.cur}, true
}

// next returns the step following a failed attempt of the given class. ok is
// false once the pool is exhausted.
func (p *attemptPlan) next(class failureClass) (step, bool) {
	if class == failureRateLimited && p.cur.try < maxTriesPerKey {
		p.cur.try++
		return step{attempt: p.cur, backoff: true}, true
	}
	if p.cur.key+1 >= p.size {
		return step{}, false
	}
	p.cur = attempt{key: p.cur.key + 1, try: 1}
	return step{attempt: p.cur}, true
}
