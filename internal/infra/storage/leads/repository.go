package leads

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
	"github.com/kodbuds/leads-service/pkg/psqlbuilder"
)

// Repository репозиторий заявок с сайта.
// Все три таблицы append-only: только вставка, без чтений и обновлений.
// Консистентность конкурентных вставок из разных сессий обеспечивает сам Postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateTrialRequest сохраняет заявку на пробное занятие
func (r *Repository) CreateTrialRequest(ctx context.Context, req *domain.TrialRequest) (*domain.TrialRequest, error) {
	query, args, err := psqlbuilder.Insert("trial_requests").
		Columns(
			"name",
			"email",
			"phone",
			"child_age_class",
			"preferred_time",
		).
		Values(
			req.Name,
			req.Email,
			req.Phone,
			req.ChildAgeClass,
			req.PreferredTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTrialRequest - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTrialRequest - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	return req, nil
}

// CreateEnrollment сохраняет заявку на запись на курс
func (r *Repository) CreateEnrollment(ctx context.Context, enr *domain.Enrollment) (*domain.Enrollment, error) {
	query, args, err := psqlbuilder.Insert("enrollments").
		Columns(
			"name",
			"email",
			"phone",
			"child_age_class",
			"course_of_interest",
		).
		Values(
			enr.Name,
			enr.Email,
			enr.Phone,
			enr.ChildAgeClass,
			enr.CourseOfInterest,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateEnrollment - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&enr.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEnrollment - execute insert: %v", ErrExecQuery, err)
	}

	enr.CreatedAt = createdAt.Time
	return enr, nil
}

// CreateContactMessage сохраняет сообщение из формы обратной связи
// Phone опционален и сохраняется пустой строкой при отсутствии
func (r *Repository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	query, args, err := psqlbuilder.Insert("messages").
		Columns(
			"name",
			"email",
			"phone",
			"message",
		).
		Values(
			msg.Name,
			msg.Email,
			msg.Phone,
			msg.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time
	return msg, nil
}
