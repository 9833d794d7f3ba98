package services

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"repair-app/internal/models"
)

// Notifier шлёт письма владельцу тикета. Все отправки best-effort:
// ошибка логируется и не влияет на запрос.
type Notifier interface {
	TicketAssigned(email string, ticket *models.Ticket)
	TicketStatusChanged(email string, ticket *models.Ticket)
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host, port, username, password, from string) *SMTPNotifier {
	p, err := strconv.Atoi(port)
	if err != nil {
		p = 587
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, p, username, password),
		from:   from,
	}
}

func (n *SMTPNotifier) TicketAssigned(email string, ticket *models.Ticket) {
	subject := fmt.Sprintf("Заявка %s передана мастеру", ticket.TicketNumber)
	body := fmt.Sprintf("Ваша заявка %s (%s %s) передана мастеру в работу.",
		ticket.TicketNumber, ticket.Brand, ticket.Model)
	n.send(email, subject, body)
}

func (n *SMTPNotifier) TicketStatusChanged(email string, ticket *models.Ticket) {
	subject := fmt.Sprintf("Заявка %s: новый статус", ticket.TicketNumber)
	body := fmt.Sprintf("Статус вашей заявки %s изменён на «%s».",
		ticket.TicketNumber, ticket.Status)
	n.send(email, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Printf("Ошибка при отправке email %s: %v", to, err)
	}
}

// NoopNotifier используется, когда SMTP не настроен.
type NoopNotifier struct{}

func (NoopNotifier) TicketAssigned(string, *models.Ticket)      {}
func (NoopNotifier) TicketStatusChanged(string, *models.Ticket) {}
