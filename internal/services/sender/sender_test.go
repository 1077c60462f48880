package sender

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventease/eventease/internal/lib/smtp"
	"github.com/eventease/eventease/internal/models"
)

type writeCloserMock struct{ bytes.Buffer }

func (w *writeCloserMock) Close() error { return nil }

type ClientMock struct {
	mock.Mock
	data writeCloserMock
}

func (m *ClientMock) Mail(from string) error { return m.Called(from).Error(0) }
func (m *ClientMock) Rcpt(to string) error   { return m.Called(to).Error(0) }
func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	return &m.data, args.Error(0)
}
func (m *ClientMock) Quit() error  { return m.Called().Error(0) }
func (m *ClientMock) Close() error { return m.Called().Error(0) }

type TransportMock struct {
	mock.Mock
	client *ClientMock
}

func (m *TransportMock) Connect() (smtp.Client, error) {
	args := m.Called()
	return m.client, args.Error(0)
}
func (m *TransportMock) GetSMTPUser() string { return "noreply@eventease.io" }

func newTransportMock(t *testing.T) (*TransportMock, *ClientMock) {
	t.Helper()
	client := new(ClientMock)
	client.On("Mail", "noreply@eventease.io").Return(nil)
	client.On("Rcpt", mock.Anything).Return(nil)
	client.On("Data").Return(nil)
	client.On("Quit").Return(nil)
	client.On("Close").Return(nil)

	transport := &TransportMock{client: client}
	transport.On("Connect").Return(nil)
	return transport, client
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSenderService_SendResetEmail(t *testing.T) {
	transport, client := newTransportMock(t)
	svc := New(newNoopLogger(), transport)

	body, err := json.Marshal(models.ResetEmail{
		Email:     "ann@x.com",
		Name:      "Ann",
		ResetLink: "http://localhost:5173/resetpassword/token123",
	})
	require.NoError(t, err)

	err = svc.SendResetEmail(body)
	require.NoError(t, err)

	sent := client.data.String()
	assert.Contains(t, sent, "To: ann@x.com")
	assert.Contains(t, sent, "Subject: Reset Your Password")
	assert.Contains(t, sent, "http://localhost:5173/resetpassword/token123")
	client.AssertCalled(t, "Rcpt", "ann@x.com")
	client.AssertCalled(t, "Quit")
}

func TestSenderService_SendResetEmail_BadJSON(t *testing.T) {
	transport, client := newTransportMock(t)
	svc := New(newNoopLogger(), transport)

	err := svc.SendResetEmail([]byte("{not json"))
	assert.Error(t, err)
	client.AssertNotCalled(t, "Mail", mock.Anything)
}

func TestSenderService_SendBookingConfirmation(t *testing.T) {
	transport, client := newTransportMock(t)
	svc := New(newNoopLogger(), transport)

	body, err := json.Marshal(models.BookingConfirmation{
		Email:       "bob@x.com",
		Name:        "Bob",
		EventTitle:  "Go Meetup",
		EventDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EventTime:   "19:00",
		Location:    "Berlin",
		TicketPrice: 25,
	})
	require.NoError(t, err)

	err = svc.SendBookingConfirmation(body)
	require.NoError(t, err)

	sent := client.data.String()
	assert.Contains(t, sent, "To: bob@x.com")
	assert.Contains(t, sent, `"Go Meetup"`)
	assert.Contains(t, sent, "Thu, 10 Sep 2026")
	assert.Contains(t, sent, "$25.00")
	client.AssertCalled(t, "Rcpt", "bob@x.com")
}
