package create_trial_request

import (
	"context"

	submitTrialRequest "github.com/kodbuds/leads-service/internal/usecase/submit_trial_request"
)

type SubmitTrialRequestUseCase interface {
	Execute(ctx context.Context, req *submitTrialRequest.Request) (*submitTrialRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
