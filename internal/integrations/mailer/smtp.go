package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"portfolio-assistant/internal/domain"
)

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	send     sendFunc
}

type Option func(*SMTPMailer)

func WithServer(host string, port int) Option {
	return func(m *SMTPMailer) {
		if h := strings.TrimSpace(host); h != "" {
			m.host = h
		}
		if port > 0 {
			m.port = port
		}
	}
}

func NewSMTPMailer(username, password string, opts ...Option) *SMTPMailer {
	m := &SMTPMailer{
		host:     DefaultHost,
		port:     DefaultPort,
		username: strings.TrimSpace(username),
		password: password,
		send:     smtp.SendMail,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *SMTPMailer) Configured() bool {
	return m.username != "" && m.password != ""
}

func (m *SMTPMailer) Sender() string {
	return m.username
}

func (m *SMTPMailer) addr() string {
	return net.JoinHostPort(m.host, fmt.Sprint(m.port))
}

// Send delivers msg. smtp.SendMail takes no context, so ctx is only checked
// before dialing.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.Mail) error {
	if !m.Configured() {
		return errors.New("mailer: smtp credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	if len(msg.To) == 0 {
		return errors.New("mailer: no recipients")
	}
	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return fmt.Errorf("mailer: parse from address: %w", err)
	}
	raw, err := buildMessage(msg, time.Now())
	if err != nil {
		return err
	}
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := m.send(m.addr(), auth, from.Address, msg.To, raw); err != nil {
		return fmt.Errorf("mailer: send via %s: %w", m.addr(), err)
	}
	return nil
}

// buildMessage renders a multipart/alternative message with a text and an
// HTML part.
func buildMessage(msg domain.Mail, now time.Time) ([]byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := writePart(w, "text/plain; charset=utf-8", msg.TextBody); err != nil {
		return nil, err
	}
	if msg.HTMLBody != "" {
		if err := writePart(w, "text/html; charset=utf-8", msg.HTMLBody); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("mailer: close multipart: %w", err)
	}

	var out bytes.Buffer
	header := func(k, v string) {
		out.WriteString(k + ": " + sanitizeHeader(v) + "\r\n")
	}
	header("From", msg.From)
	header("To", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		header("Reply-To", msg.ReplyTo)
	}
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", "multipart/alternative; boundary="+w.Boundary())
	out.WriteString("\r\n")
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

func writePart(w *multipart.Writer, contentType, text string) error {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	h.Set("Content-Transfer-Encoding", "quoted-printable")
	pw, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("mailer: create part: %w", err)
	}
	qp := quotedprintable.NewWriter(pw)
	if _, err := qp.Write([]byte(text)); err != nil {
		return fmt.Errorf("mailer: write part: %w", err)
	}
	if err := qp.Close(); err != nil {
		return fmt.Errorf("mailer: flush part: %w", err)
	}
	return nil
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}
