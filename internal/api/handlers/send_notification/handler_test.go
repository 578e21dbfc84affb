package send_notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbuds/leads-service/internal/service/notifications"
)

type stubService struct {
	err     error
	gotType string
	gotData json.RawMessage
}

func (s *stubService) Send(ctx context.Context, notifType string, data json.RawMessage) error {
	s.gotType = notifType
	s.gotData = data
	return s.err
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/internal/notifications", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) NotificationResponse {
	t.Helper()
	var resp NotificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, &noopLogger{})

	rec := doRequest(h, `{"type": "contact_message", "data": {"name": "Grace"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)

	assert.Equal(t, "contact_message", svc.gotType)
	assert.JSONEq(t, `{"name": "Grace"}`, string(svc.gotData))
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubService{}, &noopLogger{})

	rec := doRequest(h, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestHandle_UnknownType(t *testing.T) {
	h := NewHandler(&stubService{err: notifications.ErrUnknownType}, &noopLogger{})

	rec := doRequest(h, `{"type": "newsletter", "data": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestHandle_InvalidPayload(t *testing.T) {
	h := NewHandler(&stubService{err: notifications.ErrInvalidPayload}, &noopLogger{})

	rec := doRequest(h, `{"type": "trial_request", "data": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SendFailure(t *testing.T) {
	h := NewHandler(&stubService{err: notifications.ErrSend}, &noopLogger{})

	rec := doRequest(h, `{"type": "contact_message", "data": {}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}
