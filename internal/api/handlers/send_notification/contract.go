package send_notification

import (
	"context"
	"encoding/json"
)

type NotificationsService interface {
	Send(ctx context.Context, notifType string, data json.RawMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
