package get_trial_slots

import (
	"time"

	"github.com/kodbuds/leads-service/internal/domain"
	getTrialSlots "github.com/kodbuds/leads-service/internal/usecase/get_trial_slots"
)

// TrialSlotsResponse HTTP response model
type TrialSlotsResponse struct {
	Date     string   `json:"date"`
	Bookable bool     `json:"bookable"`
	Slots    []string `json:"slots"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getTrialSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getTrialSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTrialSlots.Response) *TrialSlotsResponse {
	return &TrialSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Bookable: resp.Bookable,
		Slots:    resp.Slots,
	}
}
