package notifications

// TrialRequestData данные письма о заявке на пробное занятие
type TrialRequestData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ChildAgeClass string `json:"childAgeClass"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}

// EnrollmentData данные письма о записи на курс
type EnrollmentData struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ChildAgeClass    string `json:"childAgeClass"`
	CourseOfInterest string `json:"courseOfInterest"`
}

// ContactMessageData данные письма о сообщении с формы обратной связи
type ContactMessageData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
