package create_contact_message

import (
	"time"

	submitContactMessage "github.com/kodbuds/leads-service/internal/usecase/submit_contact_message"
)

// ContactMessageRequest HTTP request model
// Phone опционален: отсутствие поля равносильно пустой строке
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactMessageResponse HTTP response model
type ContactMessageResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ContactMessageRequest) ToUseCaseRequest() *submitContactMessage.Request {
	return &submitContactMessage.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitContactMessage.Response) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:        resp.ID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
