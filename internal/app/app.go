package app

import (
	"context"
	"fmt"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/sirupsen/logrus"

	"portfolio-assistant/handler"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/integrations/gemini"
	"portfolio-assistant/internal/integrations/mailer"
	"portfolio-assistant/internal/integrations/paramstore"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/internal/usecase"
)

// NewHandler wires services and integrations from cfg. Both entrypoints share it.
func NewHandler(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*handler.Handler, error) {
	credentials, err := credentialLookup(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	llm := gemini.NewClient(
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithHTTPClient(&http.Client{Timeout: cfg.Gemini.Timeout}),
	)
	fallback := usecase.NewFallbackMatcher(profile.FallbackRules(), profile.DefaultAnswer())

	answers, err := usecase.NewAnswerService(llm, credentials, profile.SystemPrompt, fallback, log)
	if err != nil {
		return nil, fmt.Errorf("answer service: %w", err)
	}

	m := mailer.NewSMTPMailer(cfg.Gmail.User, cfg.Gmail.AppPassword, mailer.WithServer(cfg.SMTP.Host, cfg.SMTP.Port))
	if !m.Configured() {
		log.Warn("gmail credentials not set, contact form will report not_configured")
	}
	contact, err := usecase.NewContactService(m, profile.SiteName, log)
	if err != nil {
		return nil, fmt.Errorf("contact service: %w", err)
	}

	log.WithFields(logrus.Fields{
		"model":        llm.Model(),
		"param_prefix": cfg.ParamPrefix,
	}).Info("services initialised")

	return handler.NewHandler(answers, contact, fallback, log)
}

// credentialLookup reads slots from the environment first, then from
// Parameter Store when a prefix is configured.
func credentialLookup(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (usecase.Lookup, error) {
	chain := usecase.ChainLookup{config.NewEnvSource()}
	if cfg.ParamPrefix == "" {
		return chain, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	client, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return nil, fmt.Errorf("create SSM client: %w", err)
	}
	src, err := paramstore.NewSource(client, cfg.ParamPrefix, log)
	if err != nil {
		return nil, err
	}
	return append(chain, src), nil
}
