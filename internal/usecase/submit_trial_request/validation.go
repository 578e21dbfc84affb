package submit_trial_request

import (
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Форма на сайте не дает отправить незаполненные поля, но usecase
// перепроверяет все сам.
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

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Slot == "" {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}

	return nil
}
