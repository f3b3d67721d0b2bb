package email

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() Message {
	return Message{
		From:    "Portfolio <onboarding@resend.dev>",
		To:      "owner@example.com",
		ReplyTo: "jane@example.com",
		Subject: "Jane Doe sent a message from amilemia.dev",
		Text:    "Name: Jane Doe\nEmail: jane@example.com\n\nMessage:\nHello there",
	}
}

func TestSMTPSender_Send(t *testing.T) {
	sender := NewSMTPSender("smtp.example.com", "587", "user", "secret")

	var gotAddr, gotFrom string
	var gotTo []string
	var gotBody []byte
	sender.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotBody = addr, from, to, msg
		return nil
	}

	require.NoError(t, sender.Send(context.Background(), sampleMessage()))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "onboarding@resend.dev", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	body := string(gotBody)
	assert.Contains(t, body, "Subject: Jane Doe sent a message from amilemia.dev\r\n")
	assert.Contains(t, body, "Reply-To: jane@example.com\r\n")
	assert.Contains(t, body, "Message:\r\nHello there")
}

func TestSMTPSender_NotConfigured(t *testing.T) {
	sender := NewSMTPSender("", "587", "", "")
	assert.ErrorIs(t, sender.Send(context.Background(), sampleMessage()), ErrNotConfigured)
}

func TestSMTPSender_WrapsTransportError(t *testing.T) {
	sender := NewSMTPSender("smtp.example.com", "587", "user", "secret")
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("dial tcp: timeout")
	}

	err := sender.Send(context.Background(), sampleMessage())
	assert.ErrorContains(t, err, "dial tcp: timeout")
}

func TestSendGridSender_Send(t *testing.T) {
	var payload map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &payload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewSendGridSender("SG.test", srv.URL)
	require.NoError(t, sender.Send(context.Background(), sampleMessage()))

	assert.Equal(t, "Bearer SG.test", auth)
	assert.Equal(t, "Jane Doe sent a message from amilemia.dev", payload["subject"])
	from := payload["from"].(map[string]any)
	assert.Equal(t, "onboarding@resend.dev", from["email"])
	assert.Equal(t, "Portfolio", from["name"])
}

func TestSendGridSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewSendGridSender("SG.bad", srv.URL)
	err := sender.Send(context.Background(), sampleMessage())
	assert.ErrorContains(t, err, "status 401")
}

func TestSendGridSender_NilWithoutKey(t *testing.T) {
	assert.Nil(t, NewSendGridSender("", ""))
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESSender_Send(t *testing.T) {
	fake := &fakeSES{}
	sender := NewSESSender(fake)

	require.NoError(t, sender.Send(context.Background(), sampleMessage()))

	require.NotNil(t, fake.input)
	assert.Equal(t, "Portfolio <onboarding@resend.dev>", aws.ToString(fake.input.FromEmailAddress))
	assert.Equal(t, []string{"owner@example.com"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, []string{"jane@example.com"}, fake.input.ReplyToAddresses)
	assert.Contains(t, aws.ToString(fake.input.Content.Simple.Body.Text.Data), "Hello there")
}

func TestSESSender_Error(t *testing.T) {
	sender := NewSESSender(&fakeSES{err: errors.New("throttled")})
	assert.ErrorContains(t, sender.Send(context.Background(), sampleMessage()), "throttled")
}

func TestLogSender_RejectsIncompleteMessage(t *testing.T) {
	var buf strings.Builder
	sender := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sender.Send(context.Background(), sampleMessage()))
	assert.Contains(t, buf.String(), "email dispatch skipped")

	msg := sampleMessage()
	msg.To = ""
	assert.Error(t, sender.Send(context.Background(), msg))
}
