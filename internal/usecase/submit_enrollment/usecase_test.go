package submit_enrollment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbuds/leads-service/internal/domain"
	notifierClient "github.com/kodbuds/leads-service/internal/integrations/notifier"
)

type stubLeadsRepo struct {
	err   error
	calls int
	got   *domain.Enrollment
}

func (r *stubLeadsRepo) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	r.calls++
	r.got = enrollment
	if r.err != nil {
		return nil, r.err
	}
	created := *enrollment
	created.ID = 7
	created.CreatedAt = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	return &created, nil
}

type stubNotifier struct {
	err   error
	calls int
	got   *notifierClient.Notification
}

func (n *stubNotifier) Send(ctx context.Context, notification *notifierClient.Notification) error {
	n.calls++
	n.got = notification
	return n.err
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Name:             "Brian Otieno",
		Email:            "brian@example.com",
		Phone:            "+254711111111",
		ChildAgeClass:    "class4-6",
		CourseOfInterest: "python-programming",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubLeadsRepo{}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)

	require.Equal(t, 1, repo.calls)
	assert.Equal(t, "python-programming", repo.got.CourseOfInterest)

	require.Equal(t, 1, notifier.calls)
	assert.Equal(t, string(domain.SubmissionEnrollment), notifier.got.Type)
}

func TestExecute_PersistFailureIsFatal(t *testing.T) {
	repo := &stubLeadsRepo{err: errors.New("connection refused")}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, &noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, notifier.calls)
}

func TestExecute_NotificationFailureIsSwallowed(t *testing.T) {
	repo := &stubLeadsRepo{}
	notifier := &stubNotifier{err: errors.New("smtp unavailable")}
	uc := NewUseCase(repo, notifier, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.Name = "" }},
		{name: "empty email", mutate: func(r *Request) { r.Email = "" }},
		{name: "empty phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "unknown age class", mutate: func(r *Request) { r.ChildAgeClass = "adult" }},
		{name: "unknown course code", mutate: func(r *Request) { r.CourseOfInterest = "quantum-computing" }},
		{name: "empty course code", mutate: func(r *Request) { r.CourseOfInterest = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubLeadsRepo{}
			notifier := &stubNotifier{}
			uc := NewUseCase(repo, notifier, &noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, repo.calls)
			assert.Equal(t, 0, notifier.calls)
		})
	}
}

func TestExecute_AcceptsUnsureCourse(t *testing.T) {
	// "multiple-courses" и "unsure" - валидные варианты выбора на форме
	repo := &stubLeadsRepo{}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, &noopLogger{})

	req := validRequest()
	req.CourseOfInterest = "unsure"

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}
