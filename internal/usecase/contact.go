package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/mail"
	"strings"

	"github.com/sirupsen/logrus"

	"portfolio-assistant/internal/domain"
)

// Mailer delivers rendered mail. Configured reports whether credentials are
// present; Send is never called when it returns false.
type Mailer interface {
	Configured() bool
	Sender() string
	Send(ctx context.Context, m domain.Mail) error
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactService struct {
	mailer   Mailer
	siteName string
	log      logrus.FieldLogger
}

func NewContactService(m Mailer, siteName string, log logrus.FieldLogger) (*ContactService, error) {
	if m == nil {
		return nil, errors.New("usecase: mailer must not be nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ContactService{mailer: m, siteName: strings.TrimSpace(siteName), log: log}, nil
}

func (s *ContactService) Send(ctx context.Context, in ContactInput) error {
	msg := domain.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return newError(ErrorInvalidInput, "missing_fields", nil)
	}
	if !s.mailer.Configured() {
		s.log.WithFields(logrus.Fields{
			"sender_name":  msg.Name,
			"sender_email": msg.Email,
		}).Warn("contact mailer not configured, message dropped")
		return newError(ErrorNotConfigured, "not_configured", nil)
	}

	out, err := s.render(msg)
	if err != nil {
		return newError(ErrorInternal, "render_failed", err)
	}
	if err := s.mailer.Send(ctx, out); err != nil {
		s.log.WithError(err).Error("contact mail send failed")
		return newError(ErrorUpstream, "send_failed", err)
	}
	return nil
}

func (s *ContactService) render(msg domain.ContactMessage) (domain.Mail, error) {
	user := s.mailer.Sender()
	var html bytes.Buffer
	if err := contactHTML.Execute(&html, contactView{ContactMessage: msg, SiteName: s.siteName, Initial: initial(msg.Name)}); err != nil {
		return domain.Mail{}, fmt.Errorf("usecase: render contact html: %w", err)
	}
	return domain.Mail{
		From:     (&mail.Address{Name: "Portfolio • Contact", Address: user}).String(),
		To:       []string{user},
		ReplyTo:  (&mail.Address{Name: msg.Name, Address: msg.Email}).String(),
		Subject:  fmt.Sprintf("[Portfolio Contact] %s reached out", msg.Name),
		TextBody: contactText(msg, s.siteName),
		HTMLBody: html.String(),
	}, nil
}

const textRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func contactText(msg domain.ContactMessage, siteName string) string {
	return strings.Join([]string{
		textRule,
		"NEW MESSAGE — " + siteName + " Portfolio",
		textRule,
		"",
		"Name:    " + msg.Name,
		"Email:   " + msg.Email,
		"Reply-To: " + msg.Email,
		"",
		"──── Message ────",
		msg.Message,
		"",
		textRule,
		"Hit reply — it goes directly to " + msg.Name,
	}, "\n")
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

type contactView struct {
	domain.ContactMessage
	SiteName string
	Initial  string
}

var contactHTML = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8" /><meta name="viewport" content="width=device-width,initial-scale=1" /></head>
<body style="margin:0;padding:0;background:#060606;font-family:Arial,Helvetica,sans-serif;">
<table width="100%" cellpadding="0" cellspacing="0" style="background:#060606;padding:32px 16px;">
<tr><td align="center">
<table width="560" cellpadding="0" cellspacing="0" style="max-width:560px;width:100%;">
<tr><td style="background:#0d2018;border:1px solid #89c4ae30;border-radius:12px 12px 0 0;padding:28px 32px;">
<p style="margin:0 0 6px;font-size:9px;letter-spacing:0.2em;text-transform:uppercase;color:#89c4ae;font-family:monospace;">● PORTFOLIO CONTACT</p>
<h1 style="margin:0;font-size:22px;font-weight:800;color:#f0ebe3;">New message from {{.Name}}</h1>
<div style="width:44px;height:44px;border-radius:50%;background:#89c4ae;color:#060606;text-align:center;line-height:44px;font-weight:800;">{{.Initial}}</div>
</td></tr>
<tr><td style="background:#0e0e0e;border:1px solid #1a1a1a;border-top:none;padding:28px 32px;">
<p style="margin:0;font-size:8px;text-transform:uppercase;color:#555;font-family:monospace;">Sender</p>
<p style="margin:4px 0 12px;font-size:14px;color:#d0d0d0;font-weight:600;">{{.Name}}</p>
<p style="margin:0;font-size:8px;text-transform:uppercase;color:#555;font-family:monospace;">Email</p>
<a href="mailto:{{.Email}}" style="display:block;margin:4px 0 24px;font-size:13px;color:#89c4ae;font-family:monospace;">{{.Email}}</a>
<p style="margin:0 0 10px;font-size:8px;text-transform:uppercase;color:#555;font-family:monospace;">Message</p>
<div style="background:#111;border-left:3px solid #89c4ae50;padding:18px 20px;font-size:14px;color:#c8c8c8;line-height:1.8;white-space:pre-wrap;word-break:break-word;">{{.Message}}</div>
</td></tr>
<tr><td style="background:#090909;border:1px solid #1a1a1a;border-radius:0 0 12px 12px;padding:16px 32px;">
<p style="margin:0;font-size:10px;color:#444;font-family:monospace;">Hit <strong style="color:#89c4ae;">Reply</strong>, it goes directly to {{.Name}} at {{.Email}}</p>
<p style="margin:0;font-size:9px;color:#2a2a2a;font-family:monospace;">{{.SiteName}}</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))
