// AngelaMos | 2026
// mail_test.go

package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/contacts-api/internal/config"
)

func TestVerificationEmail(t *testing.T) {
	msg := VerificationEmail("http://localhost:3000", "ann@example.com", "abc123")

	assert.Equal(t, "ann@example.com", msg.To)
	assert.Equal(t, "Verify email", msg.Subject)
	assert.Equal(t,
		`<a target="_blank" href="http://localhost:3000/auth/verify/abc123">Click to verify</a>`,
		msg.HTML,
	)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := NewLogSender(logger).Send(context.Background(), Message{
		To:      "ann@example.com",
		Subject: "Verify email",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"to":"ann@example.com"`)
	assert.Contains(t, buf.String(), `"subject":"Verify email"`)
}

func TestNewSMTPSender(t *testing.T) {
	sender, err := NewSMTPSender(config.MailConfig{
		Enabled:  true,
		Host:     "smtp.example.com",
		Port:     465,
		Username: "robot@example.com",
		Password: "secret",
		SSL:      true,
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "robot@example.com", sender.from)
}

func TestNewSMTPSenderRequiresHost(t *testing.T) {
	_, err := NewSMTPSender(config.MailConfig{Port: 465})
	assert.Error(t, err)
}
