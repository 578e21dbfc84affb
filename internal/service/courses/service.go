package courses

import (
	"context"

	"github.com/kodbuds/leads-service/internal/domain"
)

// Service сервис каталога курсов.
// Каталог статический и живет в domain: страница курсов меняется релизом
// сервиса, отдельного хранилища для контента нет.
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// List возвращает каталог курсов в порядке отображения на сайте
func (s *Service) List(ctx context.Context) []domain.Course {
	catalog := domain.CourseCatalog()
	s.logger.Info("ListCourses: returned %d courses", len(catalog))
	return catalog
}

// EnrollmentOptions возвращает коды курсов, допустимые в форме записи
func (s *Service) EnrollmentOptions(ctx context.Context) []string {
	return append([]string(nil), domain.CourseCodes...)
}
