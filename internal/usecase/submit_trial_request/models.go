package submit_trial_request

import "time"

// Request модель запроса на отправку заявки на пробное занятие
type Request struct {
	Name          string    // Имя родителя/опекуна
	Email         string    // Email для связи
	Phone         string    // Телефон для связи
	ChildAgeClass string    // Код возраста/класса ребенка
	Date          time.Time // Выбранная дата занятия (без времени)
	Slot          string    // Подпись выбранного слота, например "4:00 PM - 4:45 PM"
}

// Response модель ответа на успешно принятую заявку
type Response struct {
	ID            int64     // ID сохраненной заявки
	PreferredTime string    // Итоговая строка "<дата> at <слот>"
	CreatedAt     time.Time // Время сохранения заявки
}
