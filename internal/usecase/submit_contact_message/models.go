package submit_contact_message

import "time"

// Request модель запроса на отправку сообщения
type Request struct {
	Name    string // Имя отправителя
	Email   string // Email для ответа
	Phone   string // Телефон (опционально, может быть пустым)
	Message string // Текст сообщения
}

// Response модель ответа на успешно принятое сообщение
type Response struct {
	ID        int64     // ID сохраненного сообщения
	CreatedAt time.Time // Время сохранения
}
