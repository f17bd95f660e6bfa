// Package mail sends verification emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/domodwyer/mailyak/v3"
)

// Config captures the SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers account emails. Failures are never swallowed: every
// transport error is returned to the caller.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendVerification emails the verification link to recipient. The send runs
// in a goroutine so the context deadline is honoured even while the SMTP
// dialogue is in flight.
func (m *Mailer) SendVerification(ctx context.Context, recipient, link string) error {
	my := mailyak.New(fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port),
		smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host))

	my.To(recipient)
	my.From(m.cfg.From)
	my.Subject("Verify your email")
	my.Plain().Set(fmt.Sprintf("Click the link to verify your email: %s", link))

	done := make(chan error, 1)
	go func() {
		done <- my.Send()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail to %s: %w", recipient, err)
		}
		return nil
	}
}
