package submit_contact_message

import (
	"context"

	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/internal/integrations/notifier"
)

// LeadsRepository интерфейс репозитория заявок
type LeadsRepository interface {
	// CreateContactMessage сохраняет сообщение из формы обратной связи (append-only)
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}

// NotifierClient интерфейс клиента email-уведомлений
type NotifierClient interface {
	Send(ctx context.Context, notification *notifier.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
