package notifier

// Notification тегированный запрос к эндпоинту уведомлений
// Data сериализуется camelCase-ключами, как ожидает рендерер писем
type Notification struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// TrialRequestData данные заявки на пробное занятие
type TrialRequestData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ChildAgeClass string `json:"childAgeClass"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}

// EnrollmentData данные заявки на запись на курс
type EnrollmentData struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ChildAgeClass    string `json:"childAgeClass"`
	CourseOfInterest string `json:"courseOfInterest"`
}

// ContactMessageData данные сообщения из формы обратной связи
type ContactMessageData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Response модель ответа эндпоинта уведомлений
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
