package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailer_ResetURL(t *testing.T) {
	m := New("smtp.example.com", "587", "", "", "noreply@example.com", "https://app.example.com/")

	url := m.ResetURL("abc123")
	assert.Equal(t, "https://app.example.com/reset-password?key=abc123", url)

	escaped := m.ResetURL("a b&c")
	assert.Equal(t, "https://app.example.com/reset-password?key=a+b%26c", escaped)
}

func TestMailer_DegradesWithoutCredentials(t *testing.T) {
	m := New("smtp.example.com", "587", "", "", "noreply@example.com", "https://app.example.com")

	// No credentials: the URL is logged and the send reports success.
	err := m.SendResetKey(context.Background(), "user@example.com", "deadbeef")
	assert.NoError(t, err)
}
