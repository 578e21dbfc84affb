package get_trial_slots

import "time"

// Request модель запроса на получение слотов пробных занятий
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	Bookable bool      // Можно ли бронировать эту дату
	Slots    []string  // Упорядоченный список подписей слотов (пустой, если дата недоступна)
}
