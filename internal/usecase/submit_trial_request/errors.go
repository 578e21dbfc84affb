package submit_trial_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateNotBookable возвращается, когда на выбранную дату занятия не проводятся
	ErrDateNotBookable = errors.New("date is not bookable")

	// ErrDateInPast возвращается, когда выбранная дата в прошлом
	ErrDateInPast = errors.New("date is in the past")

	// ErrSlotNotOffered возвращается, когда слот не входит в список для выбранной даты
	ErrSlotNotOffered = errors.New("slot is not offered for this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
