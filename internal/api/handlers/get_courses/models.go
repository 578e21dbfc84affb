package get_courses

import "github.com/kodbuds/leads-service/internal/domain"

// CoursesResponse HTTP response model
type CoursesResponse struct {
	Courses           []Course `json:"courses"`
	EnrollmentOptions []string `json:"enrollmentOptions"`
}

// Course модель курса в каталоге
type Course struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	AgeRange    string   `json:"ageRange"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Skills      []string `json:"skills"`
	Projects    []string `json:"projects"`
}

// FromDomainCourses конвертирует каталог в HTTP response
func FromDomainCourses(catalog []domain.Course, options []string) *CoursesResponse {
	courses := make([]Course, len(catalog))
	for i, c := range catalog {
		courses[i] = Course{
			ID:          c.ID,
			Title:       c.Title,
			AgeRange:    c.AgeRange,
			Description: c.Description,
			Duration:    c.Duration,
			Level:       c.Level,
			Skills:      c.Skills,
			Projects:    c.Projects,
		}
	}

	return &CoursesResponse{
		Courses:           courses,
		EnrollmentOptions: options,
	}
}
