package mailer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) DialAndSend(msgs ...*mail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

func TestNew_DisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, mailer.New(config.SMTP{Host: "smtp.example.com", Port: 587}))
	assert.NotNil(t, mailer.New(config.SMTP{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", To: "me@example.com"}))
}

func TestCompose(t *testing.T) {
	m := mailer.NewWithSender(nil, "site@example.com", "owner@example.com")

	msg := m.Compose(models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello there"})

	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Portfolio Contact: Ada"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hello there")
}

func TestNotifyContact(t *testing.T) {
	sender := new(mockSender)
	sender.On("DialAndSend", mock.Anything).Return(nil).Once()
	sender.On("DialAndSend", mock.Anything).Return(errors.New("connection refused")).Once()
	m := mailer.NewWithSender(sender, "site@example.com", "owner@example.com")
	msg := models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"}

	require.NoError(t, m.NotifyContact(context.Background(), msg))
	err := m.NotifyContact(context.Background(), msg)

	assert.ErrorContains(t, err, "connection refused")
	sender.AssertExpectations(t)
}

// blockingSender holds every send until release is closed.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	sent    chan struct{}
}

func (b *blockingSender) DialAndSend(...*mail.Message) error {
	close(b.started)
	<-b.release
	close(b.sent)
	return nil
}

func TestNotifyContact_WaitCoversTimedOutSend(t *testing.T) {
	sender := &blockingSender{
		started: make(chan struct{}),
		release: make(chan struct{}),
		sent:    make(chan struct{}),
	}
	m := mailer.NewWithSender(sender, "site@example.com", "owner@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := m.NotifyContact(ctx, models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	<-sender.started

	waited := make(chan struct{})
	go func() {
		m.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while a send was still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(sender.release)
	<-waited
	select {
	case <-sender.sent:
	default:
		t.Fatal("send did not finish before Wait returned")
	}
}
