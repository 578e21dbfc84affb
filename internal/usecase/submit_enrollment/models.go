package submit_enrollment

import "time"

// Request модель запроса на запись на курс
type Request struct {
	Name             string // Имя родителя/опекуна
	Email            string // Email для связи
	Phone            string // Телефон для связи
	ChildAgeClass    string // Код возраста/класса ребенка
	CourseOfInterest string // Код выбранного курса
}

// Response модель ответа на успешно принятую заявку
type Response struct {
	ID        int64     // ID сохраненной заявки
	CreatedAt time.Time // Время сохранения заявки
}
