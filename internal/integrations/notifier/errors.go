package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от эндпоинта уведомлений
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrSendFailed возвращается, когда эндпоинт ответил, но уведомление не отправлено
	ErrSendFailed = errors.New("notifier client: notification was not sent")
)
