package booking

import "errors"

var (
	// ErrDateNotBookable возвращается при выборе даты, на которую занятия не проводятся (воскресенье)
	ErrDateNotBookable = errors.New("booking: date is not bookable")

	// ErrDateInPast возвращается при выборе даты в прошлом
	ErrDateInPast = errors.New("booking: date is in the past")

	// ErrNoDateSelected возвращается при выборе слота до выбора даты
	ErrNoDateSelected = errors.New("booking: no date selected")

	// ErrSlotNotOffered возвращается при выборе слота, которого нет в списке для выбранной даты
	ErrSlotNotOffered = errors.New("booking: slot is not offered for the selected date")

	// ErrDraftIncomplete возвращается при попытке зафиксировать черновик с незаполненными полями
	ErrDraftIncomplete = errors.New("booking: draft is incomplete")

	// ErrDraftConsumed возвращается при повторной фиксации уже отправленного черновика
	ErrDraftConsumed = errors.New("booking: draft already consumed")
)
