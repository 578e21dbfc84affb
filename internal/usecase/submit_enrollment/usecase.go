package submit_enrollment

import (
	"context"
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/internal/integrations/notifier"
)

// UseCase use case для записи на курс.
// Та же дисциплина, что и у заявок на пробные занятия: сохранение
// обязательно, уведомление best-effort.
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

// Execute выполняет use case записи на курс
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitEnrollment: email=%s, course=%s", req.Email, req.CourseOfInterest)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitEnrollment: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем заявку - обязательный шаг
	enrollment := &domain.Enrollment{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		ChildAgeClass:    req.ChildAgeClass,
		CourseOfInterest: req.CourseOfInterest,
	}

	created, err := uc.leadsRepo.CreateEnrollment(ctx, enrollment)
	if err != nil {
		uc.logger.Error("SubmitEnrollment: failed to persist enrollment: %v", err)
		return nil, fmt.Errorf("%w: failed to persist enrollment: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitEnrollment: enrollment saved: id=%d", created.ID)

	// 3. Отправляем уведомление администратору - best-effort, ошибка проглатывается
	notification := &notifier.Notification{
		Type: string(domain.SubmissionEnrollment),
		Data: notifier.EnrollmentData{
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			ChildAgeClass:    req.ChildAgeClass,
			CourseOfInterest: req.CourseOfInterest,
		},
	}
	if err := uc.notifier.Send(ctx, notification); err != nil {
		uc.logger.Error("SubmitEnrollment: notification failed for enrollment id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:        created.ID,
		CreatedAt: created.CreatedAt,
	}, nil
}
