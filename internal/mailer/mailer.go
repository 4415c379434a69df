package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"leadform/internal/model"
	"leadform/pkg/config"
)

// Notifier delivers an admin alert for a submission. Implementations make a
// single attempt; the caller decides whether a failure is fatal.
type Notifier interface {
	Notify(ctx context.Context, s *model.Submission) error
}

const bodyTemplate = `
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Contact Number:</strong> {{.ContactNumber}}</p>
<p><strong>Service:</strong> {{.Service}}</p>
<p><strong>Description:</strong> {{.Description}}</p>
<p><strong>Submission Date:</strong> {{.CreatedAt.Format "2006-01-02 15:04:05"}}</p>
`

// SMTPNotifier sends submission alerts to the configured admin address over
// an implicit-TLS connection to the mail relay.
type SMTPNotifier struct {
	client     *mail.Client
	from       string
	adminEmail string
	tmpl       *template.Template
	logger     *zap.Logger
}

func NewSMTPNotifier(smtpCfg config.SMTPConfig, adminEmail string, logger *zap.Logger) (*SMTPNotifier, error) {
	client, err := mail.NewClient(smtpCfg.Host,
		mail.WithPort(smtpCfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(smtpCfg.Username),
		mail.WithPassword(smtpCfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	tmpl, err := template.New("notification").Parse(bodyTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notification template: %w", err)
	}

	return &SMTPNotifier{
		client:     client,
		from:       smtpCfg.Username,
		adminEmail: adminEmail,
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

// Notify sends one notification email. No retry on failure.
func (n *SMTPNotifier) Notify(ctx context.Context, s *model.Submission) error {
	var body bytes.Buffer
	if err := n.tmpl.Execute(&body, s); err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("New Submission", n.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.adminEmail); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Form Submission: %s", s.Service))
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	n.logger.Info("Sending admin notification",
		zap.Int64("submission_id", s.ID),
		zap.String("to", n.adminEmail),
	)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
