package mail

import (
	"time"

	"github.com/trinity-tools/trinity-mail/internal/util"

	gomail "gopkg.in/mail.v2"
)

// prepare fills the defaults an empty message field falls back to.
func (s *SMTPMailer) prepare(msg Message) Message {
	if msg.To == "" {
		msg.To = s.cfg.GetRecipient()
	}
	if msg.Subject == "" {
		msg.Subject = DefaultSubject
	}
	return msg
}

// Send submits one message over a STARTTLS session. Transport failures
// never escape this boundary: any error during connect, TLS negotiation,
// authentication or submission is logged and reported as a false result.
func (s *SMTPMailer) Send(msg Message) bool {
	msg = s.prepare(msg)
	m := build(s.cfg.GetSender(), msg, time.Now())

	dialer := gomail.NewDialer(s.cfg.GetServer(), s.cfg.GetPort(), s.cfg.GetSender(), s.cfg.GetPassword())
	dialer.StartTLSPolicy = gomail.MandatoryStartTLS

	if err := dialer.DialAndSend(m); err != nil {
		util.LogError(util.MailError, "sending mail", err)
		return false
	}

	util.Green.Printf("Email sent successfully to %s\n", msg.To)
	return true
}
