package submit_enrollment

import (
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if !domain.IsValidAgeClass(req.ChildAgeClass) {
		return fmt.Errorf("%w: unknown age/class code %q", ErrInvalidInput, req.ChildAgeClass)
	}

	if !domain.IsValidCourseCode(req.CourseOfInterest) {
		return fmt.Errorf("%w: unknown course code %q", ErrInvalidInput, req.CourseOfInterest)
	}

	return nil
}
