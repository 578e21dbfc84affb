package create_contact_message

import (
	"context"

	submitContactMessage "github.com/kodbuds/leads-service/internal/usecase/submit_contact_message"
)

type SubmitContactMessageUseCase interface {
	Execute(ctx context.Context, req *submitContactMessage.Request) (*submitContactMessage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
