package create_trial_request

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitTrialRequest "github.com/kodbuds/leads-service/internal/usecase/submit_trial_request"
)

type stubUseCase struct {
	resp *submitTrialRequest.Response
	err  error
	got  *submitTrialRequest.Request
}

func (uc *stubUseCase) Execute(ctx context.Context, req *submitTrialRequest.Request) (*submitTrialRequest.Response, error) {
	uc.got = req
	return uc.resp, uc.err
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"name": "Amina Hassan",
	"email": "amina@example.com",
	"phone": "+254700000000",
	"childAgeClass": "9-12",
	"date": "2026-09-02",
	"slot": "4:45 PM - 5:30 PM"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trial-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &submitTrialRequest.Response{
			ID:            42,
			PreferredTime: "September 2nd, 2026 at 4:45 PM - 5:30 PM",
			CreatedAt:     time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, &noopLogger{})

	rec := doRequest(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TrialRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "September 2nd, 2026 at 4:45 PM - 5:30 PM", resp.PreferredTime)

	// Дата распарсена в time.Time до вызова use case
	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), uc.got.Date)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, &noopLogger{})

	rec := doRequest(h, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	h := NewHandler(&stubUseCase{}, &noopLogger{})

	rec := doRequest(h, `{
		"name": "Amina Hassan",
		"email": "amina@example.com",
		"phone": "+254700000000",
		"childAgeClass": "9-12",
		"date": "02/09/2026",
		"slot": "4:45 PM - 5:30 PM"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: submitTrialRequest.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "date not bookable", err: submitTrialRequest.ErrDateNotBookable, wantStatus: http.StatusBadRequest},
		{name: "date in past", err: submitTrialRequest.ErrDateInPast, wantStatus: http.StatusBadRequest},
		{name: "slot not offered", err: submitTrialRequest.ErrSlotNotOffered, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: submitTrialRequest.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, &noopLogger{})

			rec := doRequest(h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
