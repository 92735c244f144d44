package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio-assistant/internal/logging"
	"portfolio-assistant/internal/usecase"
)

const (
	correlationHeader = "X-Correlation-Id"
	maxBodyBytes      = 64 << 10

	msgEmptyMessage     = "Empty message"
	msgInvalidBody      = "Invalid request body"
	msgMissingFields    = "Missing fields"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
)

type Answerer interface {
	Answer(ctx context.Context, in usecase.AnswerInput) (usecase.AnswerOutput, error)
}

type ContactSender interface {
	Send(ctx context.Context, in usecase.ContactInput) error
}

// Fallback produces an offline answer for a message.
type Fallback interface {
	Match(message string) string
}

type answerRequest struct {
	Message string `json:"message"`
}

type answerResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

// result is a transport-neutral response.
type result struct {
	status int
	body   any
}

type Handler struct {
	answers  Answerer
	contact  ContactSender
	fallback Fallback
	log      logrus.FieldLogger
	routes   map[string]routeFunc
}

type routeFunc func(ctx context.Context, log logrus.FieldLogger, body []byte) result

func NewHandler(answers Answerer, contact ContactSender, fallback Fallback, log logrus.FieldLogger) (*Handler, error) {
	if answers == nil {
		return nil, errors.New("handler: answer service must not be nil")
	}
	if contact == nil {
		return nil, errors.New("handler: contact service must not be nil")
	}
	if fallback == nil {
		return nil, errors.New("handler: fallback must not be nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	h := &Handler{answers: answers, contact: contact, fallback: fallback, log: log}
	h.routes = map[string]routeFunc{
		"/answer":      h.answer,
		"/api/chat":    h.answer,
		"/contact":     h.contactForm,
		"/api/contact": h.contactForm,
	}
	return h, nil
}

// Handle serves API Gateway proxy events.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	corrID := correlationID(req.Headers)
	path := normalizePath(req.Path)
	log := logging.WithRequest(h.log, corrID, path)

	route, ok := h.routes[path]
	if !ok {
		return toProxyResponse(result{http.StatusNotFound, errorResponse{Error: msgNotFound}}, corrID), nil
	}
	if !strings.EqualFold(req.HTTPMethod, http.MethodPost) {
		return toProxyResponse(result{http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed}}, corrID), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return toProxyResponse(result{http.StatusBadRequest, errorResponse{Error: msgInvalidBody}}, corrID), nil
		}
		body = decoded
	}
	if len(body) > maxBodyBytes {
		return toProxyResponse(result{http.StatusBadRequest, errorResponse{Error: msgInvalidBody}}, corrID), nil
	}
	return toProxyResponse(route(ctx, log, body), corrID), nil
}

func (h *Handler) answer(ctx context.Context, log logrus.FieldLogger, body []byte) (res result) {
	var req answerRequest
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("answer panicked, serving fallback")
			res = result{http.StatusOK, answerResponse{Response: h.fallback.Match(req.Message)}}
		}
	}()
	if err := json.Unmarshal(body, &req); err != nil {
		log.WithError(err).Debug("invalid answer request body")
		return result{http.StatusBadRequest, errorResponse{Error: msgInvalidBody}}
	}
	if strings.TrimSpace(req.Message) == "" {
		return result{http.StatusBadRequest, errorResponse{Error: msgEmptyMessage}}
	}

	out, err := h.answers.Answer(ctx, usecase.AnswerInput{Message: req.Message})
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) && ucErr.Code == usecase.ErrorInvalidInput {
			return result{http.StatusBadRequest, errorResponse{Error: msgEmptyMessage}}
		}
		log.WithError(err).Error("answer failed, serving fallback")
		return result{http.StatusOK, answerResponse{Response: h.fallback.Match(req.Message)}}
	}
	log.WithFields(logrus.Fields{
		"source":   out.Source,
		"attempts": out.Attempts,
	}).Info("answered")
	return result{http.StatusOK, answerResponse{Response: out.Answer}}
}

func (h *Handler) contactForm(ctx context.Context, log logrus.FieldLogger, body []byte) result {
	var req contactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.WithError(err).Debug("invalid contact request body")
		return result{http.StatusBadRequest, errorResponse{Error: msgInvalidBody}}
	}

	err := h.contact.Send(ctx, usecase.ContactInput{Name: req.Name, Email: req.Email, Message: req.Message})
	if err == nil {
		return result{http.StatusOK, contactResponse{OK: true}}
	}
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		switch ucErr.Code {
		case usecase.ErrorInvalidInput:
			return result{http.StatusBadRequest, errorResponse{Error: msgMissingFields}}
		case usecase.ErrorNotConfigured:
			return result{http.StatusOK, contactResponse{OK: false, Reason: "not_configured"}}
		}
	}
	log.WithError(err).Error("contact send failed")
	return result{http.StatusInternalServerError, contactResponse{OK: false, Error: "send_failed"}}
}

func toProxyResponse(r result, corrID string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: corrID,
		},
		Body: string(encode(r.body)),
	}
}

func encode(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"error":"Internal error"}`)
	}
	return b
}

func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, correlationHeader) && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return newCorrelationID()
}

func normalizePath(p string) string {
	return "/" + strings.Trim(strings.TrimSpace(p), "/")
}

var newCorrelationID = func() string {
	return uuid.NewString()
}
