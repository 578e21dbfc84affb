package send_notification

import (
	"errors"
	"net/http"

	"github.com/kodbuds/leads-service/internal/api/handlers"
	"github.com/kodbuds/leads-service/internal/service/notifications"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownType        = "unknown notification type"
	msgInvalidPayload     = "notification payload does not match its type"
	msgSendFailed         = "failed to send notification email"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /internal/notifications
// Контракт ответа: {"success": true} либо {"success": false, "error": "..."}.
// Вызывающая сторона (submit usecases) трактует любой не-success как
// проглатываемую ошибку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/notifications - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, NotificationResponse{
			Success: false,
			Error:   msgInvalidRequestBody,
		})
		return
	}

	if err := h.service.Send(r.Context(), req.Type, req.Data); err != nil {
		switch {
		case errors.Is(err, notifications.ErrUnknownType):
			h.logger.Warn("POST /internal/notifications - Unknown type: %s", req.Type)
			handlers.RespondJSON(w, http.StatusBadRequest, NotificationResponse{
				Success: false,
				Error:   msgUnknownType,
			})

		case errors.Is(err, notifications.ErrInvalidPayload):
			h.logger.Warn("POST /internal/notifications - Invalid payload: type=%s, error=%v", req.Type, err)
			handlers.RespondJSON(w, http.StatusBadRequest, NotificationResponse{
				Success: false,
				Error:   msgInvalidPayload,
			})

		default:
			h.logger.Error("POST /internal/notifications - Failed to send: type=%s, error=%v", req.Type, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, NotificationResponse{
				Success: false,
				Error:   msgSendFailed,
			})
		}
		return
	}

	h.logger.Info("POST /internal/notifications - Notification sent: type=%s", req.Type)
	handlers.RespondJSON(w, http.StatusOK, NotificationResponse{Success: true})
}
