package create_trial_request

import (
	"errors"
	"net/http"

	"github.com/kodbuds/leads-service/internal/api/handlers"
	submitTrialRequest "github.com/kodbuds/leads-service/internal/usecase/submit_trial_request"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid or missing form fields"
	msgDateNotBookable    = "trial classes do not run on the selected date"
	msgDateInPast         = "the selected date is in the past"
	msgSlotNotOffered     = "the selected time slot is not offered for this date"
)

type Handler struct {
	useCase SubmitTrialRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitTrialRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trial-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TrialRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trial-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /trial-requests - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, submitTrialRequest.ErrInvalidInput):
			h.logger.Warn("POST /trial-requests - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitTrialRequest.ErrDateNotBookable):
			h.logger.Warn("POST /trial-requests - Date not bookable: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, submitTrialRequest.ErrDateInPast):
			h.logger.Warn("POST /trial-requests - Date in past: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitTrialRequest.ErrSlotNotOffered):
			h.logger.Warn("POST /trial-requests - Slot not offered: email=%s, date=%s, slot=%s",
				req.Email, req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		default:
			h.logger.Error("POST /trial-requests - Failed to submit trial request: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trial-requests - Trial request submitted: id=%d, email=%s", result.ID, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
