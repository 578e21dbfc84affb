package submit_enrollment

import (
	"context"

	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/internal/integrations/notifier"
)

// LeadsRepository интерфейс репозитория заявок
type LeadsRepository interface {
	// CreateEnrollment сохраняет заявку на запись на курс (append-only)
	CreateEnrollment(ctx context.Context, enr *domain.Enrollment) (*domain.Enrollment, error)
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
