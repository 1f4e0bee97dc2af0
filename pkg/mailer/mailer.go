package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/shembeark/registrations-backend/pkg/config"
)

// Attachment is a file shipped with a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is one outbound email.
type Message struct {
	From        string
	To          string
	CC          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Sender delivers a message and returns the transport's delivery identifier.
// An empty identifier means the send cannot be confirmed and must be treated
// as a failure by callers that gate state transitions on delivery.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SMTPSender sends mail over an authenticated SMTP connection.
type SMTPSender struct {
	dialer *gomail.Dialer
	host   string
}

// NewSMTPSender builds a sender from the SMTP configuration.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("smtp host is required")
	}
	port := cfg.Port
	if port <= 0 {
		port = 465
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		host:   cfg.Host,
	}, nil
}

// Send delivers the message. The returned identifier is the Message-ID header
// stamped on the outgoing mail; SMTP has no server-issued receipt, so the
// stamped header is the closest confirmable identifier.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validateMessage(msg); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return messageID, nil
}

func validateMessage(msg Message) error {
	if strings.TrimSpace(msg.From) == "" {
		return errors.New("message from is required")
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("message recipient is required")
	}
	return nil
}
