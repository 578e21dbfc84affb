package create_enrollment

import (
	"context"

	submitEnrollment "github.com/kodbuds/leads-service/internal/usecase/submit_enrollment"
)

type SubmitEnrollmentUseCase interface {
	Execute(ctx context.Context, req *submitEnrollment.Request) (*submitEnrollment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
