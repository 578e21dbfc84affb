package create_enrollment

import (
	"time"

	submitEnrollment "github.com/kodbuds/leads-service/internal/usecase/submit_enrollment"
)

// EnrollmentRequest HTTP request model
type EnrollmentRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ChildAgeClass    string `json:"childAgeClass"`
	CourseOfInterest string `json:"courseOfInterest"`
}

// EnrollmentResponse HTTP response model
type EnrollmentResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EnrollmentRequest) ToUseCaseRequest() *submitEnrollment.Request {
	return &submitEnrollment.Request{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		ChildAgeClass:    r.ChildAgeClass,
		CourseOfInterest: r.CourseOfInterest,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitEnrollment.Response) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:        resp.ID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
