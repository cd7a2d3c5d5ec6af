package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/srisatyasai136/review/cmd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func validConfig() config.MailConfig {
	return config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "apikey",
		Password: "secret",
		From:     "noreply@example.com",
	}
}

func TestMailer_Send(t *testing.T) {
	fs := &fakeSender{}
	m := &Mailer{config: validConfig(), dialer: fs}

	res, err := m.Send(context.Background(), Email{
		To:       []string{"ann@x.com"},
		Subject:  "Verify Email OTP",
		Body:     "Your OTP is: 123456",
		HTMLBody: "<p>Your OTP is: <b>123456</b></p>",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.StatusCode)
	require.Len(t, fs.sent, 1)

	msg := fs.sent[0]
	assert.Equal(t, []string{"noreply@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"ann@x.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Verify Email OTP"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Your OTP is: 123456")
	assert.Contains(t, buf.String(), "text/html")
}

func TestMailer_Send_MissingCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Password = ""
	fs := &fakeSender{}
	m := &Mailer{config: cfg, dialer: fs}

	_, err := m.Send(context.Background(), Email{To: []string{"ann@x.com"}})
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Empty(t, fs.sent)
}

func TestMailer_Send_NoRecipients(t *testing.T) {
	m := &Mailer{config: validConfig(), dialer: &fakeSender{}}

	_, err := m.Send(context.Background(), Email{Subject: "x"})
	assert.Error(t, err)
}

func TestMailer_Send_DialError(t *testing.T) {
	m := &Mailer{config: validConfig(), dialer: &fakeSender{err: errors.New("connection refused")}}

	_, err := m.Send(context.Background(), Email{To: []string{"ann@x.com"}, Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewMailer(t *testing.T) {
	m := NewMailer(validConfig())
	require.NotNil(t, m.dialer)
	_, ok := m.dialer.(*gomail.Dialer)
	assert.True(t, ok)
}
