package mailer

import (
	"testing"

	"github.com/shembeark/registrations-backend/pkg/config"
)

func TestNewSMTPSenderRequiresHost(t *testing.T) {
	if _, err := NewSMTPSender(config.SMTPConfig{}); err == nil {
		t.Fatal("expected error without host")
	}
}

func TestNewSMTPSenderDefaultsPort(t *testing.T) {
	s, err := NewSMTPSender(config.SMTPConfig{Host: "smtp.shembeark.com", Port: 0})
	if err != nil {
		t.Fatalf("NewSMTPSender: %v", err)
	}
	if s == nil {
		t.Fatal("expected sender")
	}
}

func TestValidateMessage(t *testing.T) {
	if err := validateMessage(Message{To: "ops@shembeark.com"}); err == nil {
		t.Fatal("expected missing from to fail")
	}
	if err := validateMessage(Message{From: "noreply@shembeark.com"}); err == nil {
		t.Fatal("expected missing recipient to fail")
	}
	msg := Message{From: "noreply@shembeark.com", To: "ops@shembeark.com"}
	if err := validateMessage(msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
