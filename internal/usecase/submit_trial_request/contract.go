package submit_trial_request

import (
	"context"
	"time"

	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/internal/integrations/notifier"
)

// LeadsRepository интерфейс репозитория заявок
type LeadsRepository interface {
	// CreateTrialRequest сохраняет заявку на пробное занятие (append-only)
	CreateTrialRequest(ctx context.Context, req *domain.TrialRequest) (*domain.TrialRequest, error)
}

// NotifierClient интерфейс клиента email-уведомлений
type NotifierClient interface {
	Send(ctx context.Context, notification *notifier.Notification) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
