package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Email sends the digest as an HTML email over SMTP.
type Email struct {
	host      string
	port      int
	sender    string
	password  string
	recipient string
	log       *logrus.Entry
}

// NewEmail creates an email notifier.
func NewEmail(host string, port int, sender, password, recipient string, log *logrus.Entry) *Email {
	return &Email{
		host:      host,
		port:      port,
		sender:    sender,
		password:  password,
		recipient: recipient,
		log:       log,
	}
}

// Notify sends the digest. Delivery failure is returned to the caller; the
// caller logs it and carries on, a missed email never aborts a run.
func (e *Email) Notify(d *Digest) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", e.sender))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", e.recipient))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", BuildSubject(d)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(BuildHTMLBody(d))

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.sender, e.password, e.host)
	if err := smtp.SendMail(addr, auth, e.sender, []string{e.recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending digest email: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"recipient":  e.recipient,
		"new_finals": len(d.NewFinals),
	}).Info("digest email sent")
	return nil
}
