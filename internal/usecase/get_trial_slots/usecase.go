package get_trial_slots

import (
	"context"
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
)

// UseCase use case для получения слотов пробных занятий на дату
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Недоступная дата (воскресенье или прошлое) - не ошибка: возвращается
// Bookable=false и пустой список, календарь на сайте показывает дату серой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTrialSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetTrialSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата доступна, только если день недели рабочий И дата не в прошлом
	bookable := domain.IsBookableWeekday(req.Date) && !domain.IsDateInPast(req.Date, now)
	if !bookable {
		uc.logger.Info("GetTrialSlots: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:     req.Date,
			Bookable: false,
			Slots:    []string{},
		}, nil
	}

	// 4. Перечисляем слоты для дня недели
	slots := domain.TrialSlotsFor(req.Date)

	uc.logger.Info("GetTrialSlots: %d slots for date=%s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		Bookable: true,
		Slots:    slots,
	}, nil
}
