package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/kodbuds/leads-service/internal/domain"
)

// Service рендерит и отправляет email-уведомления администратору.
// Получатель один и фиксированный - адрес администратора из конфигурации.
type Service struct {
	sender     MailSender
	adminEmail string
	logger     Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(sender MailSender, adminEmail string, logger Logger) *Service {
	return &Service{
		sender:     sender,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Send рендерит письмо по типу уведомления и отправляет его администратору
func (s *Service) Send(ctx context.Context, notifType string, data json.RawMessage) error {
	s.logger.Info("SendNotification: type=%s", notifType)

	subject, body, err := s.render(notifType, data)
	if err != nil {
		return err
	}

	if err := s.sender.Send(s.adminEmail, subject, body); err != nil {
		s.logger.Error("SendNotification: failed to send email: type=%s, error=%v", notifType, err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	s.logger.Info("SendNotification: email sent: type=%s, to=%s", notifType, s.adminEmail)
	return nil
}

// render выбирает шаблон по типу и рендерит тему и HTML-тело письма
func (s *Service) render(notifType string, data json.RawMessage) (subject, body string, err error) {
	switch domain.SubmissionType(notifType) {
	case domain.SubmissionTrialRequest:
		var payload TrialRequestData
		if err := json.Unmarshal(data, &payload); err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		body, err := execute(trialRequestTemplate, payload)
		return subjectTrialRequest, body, err

	case domain.SubmissionEnrollment:
		var payload EnrollmentData
		if err := json.Unmarshal(data, &payload); err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		body, err := execute(enrollmentTemplate, payload)
		return subjectEnrollment, body, err

	case domain.SubmissionContactMessage:
		var payload ContactMessageData
		if err := json.Unmarshal(data, &payload); err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		body, err := execute(contactMessageTemplate, payload)
		return subjectContactMessage, body, err

	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownType, notifType)
	}
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
