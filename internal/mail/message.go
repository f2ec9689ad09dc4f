package mail

import (
	"fmt"
	"os"
	"time"

	"github.com/trinity-tools/trinity-mail/internal/util"

	gomail "gopkg.in/mail.v2"
)

// DefaultSubject and DefaultBody are the values used when the operator
// passes nothing on the command line.
const DefaultSubject = "Trinity Notification"
const DefaultBody = "Hello from Trinity!"

const timestampLayout = "2006-01-02 15:04:05"

// Message is one outgoing email. Only Subject and Body are required; an
// empty To falls back to the configured default recipient.
type Message struct {
	To         string
	Subject    string
	Body       string
	HTMLBody   string
	Attachment string
}

// stampBody appends the send timestamp. Every outgoing mail carries it,
// including mails with an empty body.
func stampBody(body string, now time.Time) string {
	return fmt.Sprintf("%s\n\nSent from Trinity at %s", body, now.Format(timestampLayout))
}

// build assembles the multipart/alternative message. The plain text part is
// always present, the HTML part only when supplied, and the attachment only
// when its path exists at this moment. A missing attachment is skipped with
// a notice rather than failing the send.
func build(from string, msg Message, now time.Time) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	m.SetBody("text/plain", stampBody(msg.Body, now))
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	if msg.Attachment != "" {
		if _, err := os.Stat(msg.Attachment); err != nil {
			util.LogErrorf(util.FileError, "attaching file", "couldn't find file %s, skipping", msg.Attachment)
		} else {
			m.Attach(msg.Attachment)
		}
	}
	return m
}
