package get_courses

import (
	"context"

	"github.com/kodbuds/leads-service/internal/domain"
)

type CoursesService interface {
	List(ctx context.Context) []domain.Course
	EnrollmentOptions(ctx context.Context) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
