package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMailerReadsSMTPConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USER", "noreply@example.com")
	t.Setenv("EMAIL_PASS", "secret")

	initMailer()
	require.NotNil(t, mailDialer)
	assert.Equal(t, "smtp.example.com", mailDialer.Host)
	assert.Equal(t, 2525, mailDialer.Port)
	assert.Equal(t, "noreply@example.com", mailDialer.Username)
	assert.Equal(t, "noreply@example.com", mailFrom)
}
