package send_notification

import "encoding/json"

// NotificationRequest HTTP request model
// Data остается сырым JSON: разбор по типу делает сервис уведомлений
type NotificationRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NotificationResponse HTTP response model
// Формат совпадает с ответом старой serverless-функции уведомлений
type NotificationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
