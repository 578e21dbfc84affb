package get_trial_slots

import (
	"context"

	getTrialSlots "github.com/kodbuds/leads-service/internal/usecase/get_trial_slots"
)

type GetTrialSlotsUseCase interface {
	Execute(ctx context.Context, req *getTrialSlots.Request) (*getTrialSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
