package create_trial_request

import (
	"time"

	"github.com/kodbuds/leads-service/internal/domain"
	submitTrialRequest "github.com/kodbuds/leads-service/internal/usecase/submit_trial_request"
)

// TrialRequestRequest HTTP request model
type TrialRequestRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ChildAgeClass string `json:"childAgeClass"`
	Date          string `json:"date"` // "2026-09-03"
	Slot          string `json:"slot"` // "4:00 PM - 4:45 PM"
}

// TrialRequestResponse HTTP response model
type TrialRequestResponse struct {
	ID            int64  `json:"id"`
	PreferredTime string `json:"preferredTime"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TrialRequestRequest) ToUseCaseRequest() (*submitTrialRequest.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &submitTrialRequest.Request{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		ChildAgeClass: r.ChildAgeClass,
		Date:          date,
		Slot:          r.Slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitTrialRequest.Response) *TrialRequestResponse {
	return &TrialRequestResponse{
		ID:            resp.ID,
		PreferredTime: resp.PreferredTime,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
