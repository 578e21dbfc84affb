package create_enrollment

import (
	"errors"
	"net/http"

	"github.com/kodbuds/leads-service/internal/api/handlers"
	submitEnrollment "github.com/kodbuds/leads-service/internal/usecase/submit_enrollment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid or missing form fields"
)

type Handler struct {
	useCase SubmitEnrollmentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitEnrollmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/enrollments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EnrollmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /enrollments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitEnrollment.ErrInvalidInput):
			h.logger.Warn("POST /enrollments - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /enrollments - Failed to submit enrollment: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enrollments - Enrollment submitted: id=%d, email=%s, course=%s",
		result.ID, req.Email, req.CourseOfInterest)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
