package create_contact_message

import (
	"errors"
	"net/http"

	"github.com/kodbuds/leads-service/internal/api/handlers"
	submitContactMessage "github.com/kodbuds/leads-service/internal/usecase/submit_contact_message"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid or missing form fields"
)

type Handler struct {
	useCase SubmitContactMessageUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact-messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitContactMessage.ErrInvalidInput):
			h.logger.Warn("POST /contact-messages - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /contact-messages - Failed to submit message: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact-messages - Message submitted: id=%d, email=%s", result.ID, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
