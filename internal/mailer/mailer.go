// Package mailer e-mails contact form submissions to the site owner.
package mailer

import (
	"context"
	"fmt"
	"sync"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/models"

	"gopkg.in/mail.v2"
)

// Sender delivers a composed message.
type Sender interface {
	DialAndSend(m ...*mail.Message) error
}

// ContactMailer notifies the owner of new contact messages.
type ContactMailer struct {
	sender Sender
	from   string
	to     string

	inflight sync.WaitGroup
}

// New returns nil when SMTP credentials are not configured.
func New(cfg config.SMTP) *ContactMailer {
	if !cfg.Enabled() {
		return nil
	}
	return NewWithSender(mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.Username, cfg.To)
}

func NewWithSender(sender Sender, from, to string) *ContactMailer {
	return &ContactMailer{sender: sender, from: from, to: to}
}

// Compose builds the notification for msg. Replies go to the visitor.
func (m *ContactMailer) Compose(msg models.ContactMessage) *mail.Message {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	mm := mail.NewMessage()
	mm.SetHeader("From", m.from)
	mm.SetHeader("To", m.to)
	mm.SetHeader("Reply-To", msg.Email)
	mm.SetHeader("Subject", "Portfolio Contact: "+msg.Name)
	mm.SetBody("text/plain", body)
	return mm
}

// NotifyContact sends the notification for msg. When ctx ends first it
// returns ctx.Err() and the send carries on; Wait covers it.
func (m *ContactMailer) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	done := make(chan error, 1)
	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		done <- m.sender.DialAndSend(m.Compose(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send contact email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until every started send has returned.
func (m *ContactMailer) Wait() {
	m.inflight.Wait()
}
