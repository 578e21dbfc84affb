package submit_contact_message

import (
	"context"
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/internal/integrations/notifier"
)

// UseCase use case для отправки сообщения с формы обратной связи.
// Сохранение обязательно, уведомление best-effort.
type UseCase struct {
	leadsRepo LeadsRepository
	notifier  NotifierClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	leadsRepo LeadsRepository,
	notifierClient NotifierClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		leadsRepo: leadsRepo,
		notifier:  notifierClient,
		logger:    logger,
	}
}

// Execute выполняет use case отправки сообщения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitContactMessage: email=%s", req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitContactMessage: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем сообщение - обязательный шаг.
	// Отсутствующий телефон хранится пустой строкой
	message := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	created, err := uc.leadsRepo.CreateContactMessage(ctx, message)
	if err != nil {
		uc.logger.Error("SubmitContactMessage: failed to persist message: %v", err)
		return nil, fmt.Errorf("%w: failed to persist message: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitContactMessage: message saved: id=%d", created.ID)

	// 3. Отправляем уведомление администратору - best-effort, ошибка проглатывается
	notification := &notifier.Notification{
		Type: string(domain.SubmissionContactMessage),
		Data: notifier.ContactMessageData{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		},
	}
	if err := uc.notifier.Send(ctx, notification); err != nil {
		uc.logger.Error("SubmitContactMessage: notification failed for message id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:        created.ID,
		CreatedAt: created.CreatedAt,
	}, nil
}
