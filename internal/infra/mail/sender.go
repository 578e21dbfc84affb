package mail

import (
	"fmt"
	"net/smtp"
)

// Sender отправляет письма через SMTP без аутентификации
// (локальный relay или Mailpit в dev-окружении)
type Sender struct {
	addr string
	from string
}

// NewSender создает новый SMTP sender
func NewSender(host string, port int, from string) *Sender {
	return &Sender{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
	}
}

// Send отправляет HTML-письмо одному получателю
func (s *Sender) Send(to, subject, htmlBody string) error {
	msg := buildMessage(s.from, to, subject, htmlBody)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

// buildMessage собирает минимальное RFC 5322 сообщение с HTML-телом
func buildMessage(from, to, subject, htmlBody string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		htmlBody,
	)
}
