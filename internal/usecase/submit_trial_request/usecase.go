package submit_trial_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/kodbuds/leads-service/internal/booking"
	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/internal/integrations/notifier"
)

// UseCase use case для отправки заявки на пробное занятие.
//
// Порядок обязательный: сначала сохранение в БД (при ошибке - отказ всей
// операции), затем email-уведомление best-effort. Недоставленное письмо
// логируется, но не меняет результат: заявка уже надежно сохранена, и
// отправитель не должен увидеть ее "потерянной" из-за внутренней почты.
type UseCase struct {
	leadsRepo    LeadsRepository
	notifier     NotifierClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	leadsRepo LeadsRepository,
	notifierClient NotifierClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		leadsRepo:    leadsRepo,
		notifier:     notifierClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitTrialRequest: email=%s, date=%s, slot=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitTrialRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прогоняем выбор через черновик: те же правила, что применяет форма.
	// UI блокирует недоступные даты и чужие слоты, но сервер не доверяет этому.
	draft := booking.NewDraft()
	draft.Name = req.Name
	draft.Email = req.Email
	draft.Phone = req.Phone
	draft.ChildAgeClass = req.ChildAgeClass

	if err := draft.SelectDate(req.Date, now); err != nil {
		uc.logger.Warn("SubmitTrialRequest: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		switch {
		case errors.Is(err, booking.ErrDateNotBookable):
			return nil, ErrDateNotBookable
		case errors.Is(err, booking.ErrDateInPast):
			return nil, ErrDateInPast
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if err := draft.SelectSlot(req.Slot); err != nil {
		uc.logger.Warn("SubmitTrialRequest: slot %q rejected for date %s: %v",
			req.Slot, req.Date.Format(domain.DateFormat), err)
		return nil, ErrSlotNotOffered
	}

	// 4. Фиксируем черновик в неизменяемую запись
	record, err := draft.Freeze()
	if err != nil {
		uc.logger.Error("SubmitTrialRequest: failed to freeze draft: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Сохраняем заявку - обязательный шаг, при ошибке операция отклоняется
	// и уведомление не отправляется
	created, err := uc.leadsRepo.CreateTrialRequest(ctx, record)
	if err != nil {
		uc.logger.Error("SubmitTrialRequest: failed to persist trial request: %v", err)
		return nil, fmt.Errorf("%w: failed to persist trial request: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitTrialRequest: trial request saved: id=%d", created.ID)

	// 6. Отправляем уведомление администратору - best-effort.
	// Ошибка логируется и проглатывается: заявка уже сохранена
	notification := &notifier.Notification{
		Type: string(domain.SubmissionTrialRequest),
		Data: notifier.TrialRequestData{
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			ChildAgeClass: req.ChildAgeClass,
			PreferredDate: domain.FormatLongDate(req.Date),
			PreferredTime: req.Slot,
		},
	}
	if err := uc.notifier.Send(ctx, notification); err != nil {
		uc.logger.Error("SubmitTrialRequest: notification failed for trial request id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:            created.ID,
		PreferredTime: created.PreferredTime,
		CreatedAt:     created.CreatedAt,
	}, nil
}
