package notifications

// MailSender интерфейс отправки писем
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
