package mail

import (
	"fmt"
	"strings"
	"time"
)

// ReportEntry is one key/value row of a report. Rows keep the order they
// were given in, in both renderings.
type ReportEntry struct {
	Key   string
	Value string
}

// Report is a structured or free-form payload sent as parallel plain text
// and HTML bodies. When Entries is empty the raw Text is used instead.
type Report struct {
	Type    string
	Entries []ReportEntry
	Text    string
}

func (r Report) subject() string {
	return "Trinity " + r.Type
}

func (r Report) textBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trinity %s\n%s\n", r.Type, strings.Repeat("=", 50))
	if len(r.Entries) > 0 {
		for _, e := range r.Entries {
			fmt.Fprintf(&b, "%s: %s\n", e.Key, e.Value)
		}
	} else {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (r Report) htmlBody(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html>\n<body>\n<h2>Trinity %s</h2>\n", r.Type)
	fmt.Fprintf(&b, "<p><strong>Generated:</strong> %s</p>\n<hr>\n", now.Format(timestampLayout))
	if len(r.Entries) > 0 {
		for _, e := range r.Entries {
			fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n", e.Key, e.Value)
		}
	} else {
		fmt.Fprintf(&b, "<pre>%s</pre>\n", r.Text)
	}
	b.WriteString("<hr>\n<p><em>Sent automatically by Trinity</em></p>\n</body>\n</html>\n")
	return b.String()
}

// SendReport renders the report and sends it to the default recipient.
func (s *SMTPMailer) SendReport(report Report) bool {
	if report.Type == "" {
		report.Type = "System Report"
	}
	return s.Send(Message{
		Subject:  report.subject(),
		Body:     report.textBody(),
		HTMLBody: report.htmlBody(time.Now()),
	})
}
