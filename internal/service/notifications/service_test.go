package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	err     error
	calls   int
	to      string
	subject string
	body    string
}

func (s *stubSender) Send(to, subject, htmlBody string) error {
	s.calls++
	s.to = to
	s.subject = subject
	s.body = htmlBody
	return s.err
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

const adminEmail = "hello@kodbuds.com"

func TestSend_TrialRequest(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, adminEmail, &noopLogger{})

	data, _ := json.Marshal(TrialRequestData{
		Name:          "Amina Hassan",
		Email:         "amina@example.com",
		Phone:         "+254700000000",
		ChildAgeClass: "9-12",
		PreferredDate: "September 2nd, 2026",
		PreferredTime: "4:45 PM - 5:30 PM",
	})

	err := svc.Send(context.Background(), "trial_request", data)

	require.NoError(t, err)
	require.Equal(t, 1, sender.calls)
	assert.Equal(t, adminEmail, sender.to)
	assert.Equal(t, "🎯 New Free Trial Request - KodBuds Tech Hub", sender.subject)
	assert.Contains(t, sender.body, "Amina Hassan")
	assert.Contains(t, sender.body, "September 2nd, 2026")
	assert.Contains(t, sender.body, "4:45 PM - 5:30 PM")
}

func TestSend_Enrollment(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, adminEmail, &noopLogger{})

	data, _ := json.Marshal(EnrollmentData{
		Name:             "Brian Otieno",
		Email:            "brian@example.com",
		Phone:            "+254711111111",
		ChildAgeClass:    "class4-6",
		CourseOfInterest: "python-programming",
	})

	err := svc.Send(context.Background(), "enrollment", data)

	require.NoError(t, err)
	assert.Equal(t, "🚀 New Course Enrollment - KodBuds Tech Hub", sender.subject)
	assert.Contains(t, sender.body, "python-programming")
}

func TestSend_ContactMessage(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, adminEmail, &noopLogger{})

	data, _ := json.Marshal(ContactMessageData{
		Name:    "Grace Wanjiku",
		Email:   "grace@example.com",
		Message: "Do you offer weekend classes?",
	})

	err := svc.Send(context.Background(), "contact_message", data)

	require.NoError(t, err)
	assert.Equal(t, "💬 New Contact Message - KodBuds Tech Hub", sender.subject)
	assert.Contains(t, sender.body, "Do you offer weekend classes?")
	// Пустой телефон рендерится заглушкой
	assert.Contains(t, sender.body, "Not provided")
}

func TestSend_UnknownType(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, adminEmail, &noopLogger{})

	err := svc.Send(context.Background(), "newsletter", json.RawMessage(`{}`))

	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, 0, sender.calls)
}

func TestSend_InvalidPayload(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, adminEmail, &noopLogger{})

	err := svc.Send(context.Background(), "trial_request", json.RawMessage(`not json`))

	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, 0, sender.calls)
}

func TestSend_SenderFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp unavailable")}
	svc := NewService(sender, adminEmail, &noopLogger{})

	data, _ := json.Marshal(ContactMessageData{
		Name:    "Grace Wanjiku",
		Email:   "grace@example.com",
		Message: "Hello",
	})

	err := svc.Send(context.Background(), "contact_message", data)

	assert.ErrorIs(t, err, ErrSend)
}
