package mail

// Notification priorities accepted by SendNotification.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

var notificationSubjects = map[string]string{
	PriorityLow:    "🔔 Trinity Notification",
	PriorityNormal: "📧 Trinity Alert",
	PriorityHigh:   "🚨 Trinity Important Alert",
}

// NotificationSubject maps a priority to its fixed subject line. Unknown
// priorities get the normal subject.
func NotificationSubject(priority string) string {
	if subject, ok := notificationSubjects[priority]; ok {
		return subject
	}
	return notificationSubjects[PriorityNormal]
}

// SendNotification sends text to the default recipient under the subject
// line for priority.
func (s *SMTPMailer) SendNotification(text string, priority string) bool {
	return s.Send(Message{
		Subject: NotificationSubject(priority),
		Body:    text,
	})
}
