package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"wellclub/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mailTestConfig() *config.Config {
	return &config.Config{
		SMTP: &config.SMTPConfig{
			Host: "smtp.example.com",
			Port: 587,
			From: "club@example.com",
		},
	}
}

func TestSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{})
	assert.Error(t, err)

	_, err = NewSMTPMailer(&config.Config{SMTP: &config.SMTPConfig{Port: 587}})
	assert.Error(t, err)
}

func TestSMTPMailer_Send(t *testing.T) {
	mailer, err := NewSMTPMailer(mailTestConfig())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	impl := mailer.(*smtpMailer)
	impl.sendFunc = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg

		return nil
	}

	err = mailer.Send(context.Background(), "member@example.com", "Welcome", "Your membership is active.")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "club@example.com", gotFrom)
	assert.Equal(t, []string{"member@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "From: club@example.com\r\n")
	assert.Contains(t, msg, "To: member@example.com\r\n")
	assert.Contains(t, msg, "Subject: Welcome\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\nYour membership is active."))
}

func TestSMTPMailer_Send_CancelledContext(t *testing.T) {
	mailer, err := NewSMTPMailer(mailTestConfig())
	require.NoError(t, err)

	called := false
	impl := mailer.(*smtpMailer)
	impl.sendFunc = func(string, smtp.Auth, string, []string, []byte) error {
		called = true

		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = mailer.Send(ctx, "member@example.com", "Welcome", "body")
	assert.Error(t, err)
	assert.False(t, called)
}

func TestSMTPMailer_Send_TransportError(t *testing.T) {
	mailer, err := NewSMTPMailer(mailTestConfig())
	require.NoError(t, err)

	impl := mailer.(*smtpMailer)
	impl.sendFunc = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err = mailer.Send(context.Background(), "member@example.com", "Welcome", "body")
	assert.ErrorContains(t, err, "member@example.com")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("club@example.com", "member@example.com", "Hello", "line one\nline two"))

	headerEnd := strings.Index(msg, "\r\n\r\n")
	require.Positive(t, headerEnd)
	assert.Equal(t, "line one\nline two", msg[headerEnd+4:])
	assert.Contains(t, msg[:headerEnd], "Content-Type: text/plain")
}
