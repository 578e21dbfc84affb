package notifications

import "errors"

var (
	// ErrUnknownType возвращается при неизвестном типе уведомления
	ErrUnknownType = errors.New("notifications: unknown notification type")

	// ErrInvalidPayload возвращается, когда данные уведомления не соответствуют типу
	ErrInvalidPayload = errors.New("notifications: invalid notification payload")

	// ErrRender возвращается при ошибке рендеринга письма
	ErrRender = errors.New("notifications: failed to render email")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("notifications: failed to send email")
)
