package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// EmailSender delivers one email.
type EmailSender interface {
	Send(to, subject, body string) error
}

// Email is a message captured by InMemoryEmail.
type Email struct {
	To      string
	Subject string
	Body    string
}

// InMemoryEmail records messages instead of sending them.
type InMemoryEmail struct {
	mu     sync.Mutex
	Outbox []Email
}

func (m *InMemoryEmail) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Outbox = append(m.Outbox, Email{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of the outbox.
func (m *InMemoryEmail) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Email(nil), m.Outbox...)
}

// LogSender writes emails to the log. It is the default transport until an SMTP relay is configured.
type LogSender struct {
	Logger zerolog.Logger
	From   string
}

func (s LogSender) Send(to, subject, body string) error {
	s.Logger.Info().Str("from", s.From).Str("to", to).Str("subject", subject).Int("body_bytes", len(body)).Msg("email sent")
	return nil
}
