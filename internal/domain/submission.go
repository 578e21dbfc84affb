package domain

import "time"

// SubmissionType represents the kind of lead submission
type SubmissionType string

const (
	SubmissionTrialRequest   SubmissionType = "trial_request"
	SubmissionEnrollment     SubmissionType = "enrollment"
	SubmissionContactMessage SubmissionType = "contact_message"
)

// TrialRequest represents a free trial class request
// Записи неизменяемы после создания: таблица append-only, обновлений и чтений нет
type TrialRequest struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	ChildAgeClass string
	// PreferredTime хранится единой строкой "<дата> at <слот>",
	// например "September 3rd, 2026 at 4:00 PM - 4:45 PM"
	PreferredTime string
	CreatedAt     time.Time
}

// Enrollment represents a course enrollment request
type Enrollment struct {
	ID               int64
	Name             string
	Email            string
	Phone            string
	ChildAgeClass    string
	CourseOfInterest string
	CreatedAt        time.Time
}

// ContactMessage represents a general contact form message
// Phone опционален: при отсутствии сохраняется пустой строкой
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
