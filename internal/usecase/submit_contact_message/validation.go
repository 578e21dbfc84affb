package submit_contact_message

import (
	"fmt"

	"github.com/kodbuds/leads-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Phone единственное опциональное поле во всех трех формах
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

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	return nil
}
