package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func testNotification() *Notification {
	return &Notification{
		Type: "contact_message",
		Data: ContactMessageData{
			Name:    "Grace Wanjiku",
			Email:   "grace@example.com",
			Message: "Hello",
		},
	}
}

func TestSend_Success(t *testing.T) {
	var gotBody map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Success: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), testNotification())

	require.NoError(t, err)
	assert.JSONEq(t, `"contact_message"`, string(gotBody["type"]))
}

func TestSend_EndpointReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Success: false, Error: "smtp unavailable"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), testNotification())

	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "smtp unavailable")
}

func TestSend_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Response{Success: false, Error: "unknown notification type"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), testNotification())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSend_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), testNotification())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSend_EndpointUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, &noopLogger{})

	err := client.Send(context.Background(), testNotification())

	assert.ErrorIs(t, err, ErrInternal)
}
