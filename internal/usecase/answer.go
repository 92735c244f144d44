package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-assistant/internal/domain"
)

const (
	maxOutputTokens = 1200
	temperature     = 0.3
	retryBackoff    = 1500 * time.Millisecond

	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Generator performs a single text generation call with the given API key.
type Generator interface {
	Generate(ctx context.Context, apiKey string, req domain.GenerateRequest) (string, error)
}

type AnswerInput struct {
	Message string
}

type AnswerOutput struct {
	Answer   string
	Source   string
	Attempts int
}

type AnswerService struct {
	llm          Generator
	credentials  Lookup
	slots        []string
	instructions string
	fallback     FallbackMatcher
	log          logrus.FieldLogger

	// sleep waits out the rate-limit backoff; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewAnswerService(llm Generator, credentials Lookup, instructions string, fallback FallbackMatcher, log logrus.FieldLogger) (*AnswerService, error) {
	if llm == nil {
		return nil, errors.New("usecase: generator must not be nil")
	}
	if credentials == nil {
		return nil, errors.New("usecase: credential lookup must not be nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AnswerService{
		llm:          llm,
		credentials:  credentials,
		slots:        CredentialSlots,
		instructions: instructions,
		fallback:     fallback,
		log:          log,
		sleep:        sleepContext,
	}, nil
}

// Answer returns a model answer when any pooled key succeeds, and the
// fallback table's answer otherwise. Only an empty message is an error.
func (s *AnswerService) Answer(ctx context.Context, in AnswerInput) (AnswerOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return AnswerOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}

	pool := BuildPool(ctx, s.credentials, s.slots)
	if len(pool) == 0 {
		s.log.Debug("credential pool empty, using fallback")
		return s.fallbackAnswer(in.Message, 0), nil
	}

	req := domain.GenerateRequest{
		Instructions:    s.instructions,
		Message:         in.Message,
		MaxOutputTokens: maxOutputTokens,
		Temperature:     temperature,
	}

	attempts := 0
	plan := newAttemptPlan(len(pool))
	for st, ok := plan.first(); ok; {
		if st.backoff {
			if err := s.sleep(ctx, retryBackoff); err != nil {
				s.log.WithError(err).Warn("backoff interrupted, using fallback")
				break
			}
		}
		attempts++
		text, err := s.generate(ctx, pool[st.key], req)
		if err == nil {
			return AnswerOutput{Answer: text, Source: SourceModel, Attempts: attempts}, nil
		}
		class := classify(err)
		s.log.WithFields(logrus.Fields{
			"key_index": st.key,
			"try":       st.try,
			"class":     class.String(),
		}).WithError(err).Warn("generation attempt failed")
		st, ok = plan.next(class)
	}

	s.log.WithField("attempts", attempts).Info("credential pool exhausted, using fallback")
	return s.fallbackAnswer(in.Message, attempts), nil
}

func (s *AnswerService) generate(ctx context.Context, apiKey string, req domain.GenerateRequest) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("usecase: generator panic: %v", r)
		}
	}()
	text, err = s.llm.Generate(ctx, apiKey, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("usecase: generator returned empty text")
	}
	return text, nil
}

func (s *AnswerService) fallbackAnswer(message string, attempts int) AnswerOutput {
	return AnswerOutput{
		Answer:   s.fallback.Match(message),
		Source:   SourceFallback,
		Attempts: attempts,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
