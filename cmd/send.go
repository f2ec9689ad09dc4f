package cmd

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/trinity-tools/trinity-mail/internal/cmdutil"
	"github.com/trinity-tools/trinity-mail/internal/mail"
	"github.com/trinity-tools/trinity-mail/internal/util"
)

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().String("to", "", "Recipient email address (config default recipient if empty)")
	sendCmd.Flags().String("subject", mail.DefaultSubject, "Email subject")
	sendCmd.Flags().String("body", mail.DefaultBody, "Email body")
	sendCmd.Flags().String("attachment", "", "Path to attachment file")
	sendCmd.Flags().String("priority", mail.PriorityNormal, "Notification priority (low, normal, high)")
	sendCmd.Flags().String("notification", "", "Send quick notification with this message")
	sendCmd.Flags().Bool("test", false, "Send test email")
}

var (
	helpSend = `Sends one email through the configured SMTP relay. The body always gets a
send timestamp appended. --test sends a fixed test message, --notification
sends a short message under a priority-tagged subject, otherwise the other
flags describe a regular mail. A failed send prints an error but is not a
process failure.`

	exampleSend = dedent.Dedent(`
		# Send a test mail to the default recipient
		trinity-mail send --test

		# Send a high priority notification
		trinity-mail send --notification "Disk almost full" --priority high

		# Send a mail with an attachment
		trinity-mail send --to ops@example.com --subject "Backup log" --attachment backup.log`)
)

var sendCmd = &cobra.Command{
	Use:     "send",
	Short:   "Send an email, notification or test message",
	Long:    helpSend,
	Example: exampleSend,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			return
		}
		sender := mail.NewSMTPMailer(cfg)

		if test, _ := cmd.Flags().GetBool("test"); test {
			ok := sender.Send(mail.Message{
				Subject: "Trinity Email Test",
				Body:    "This is a test email from Trinity. If you receive this, everything is working correctly!",
			})
			if ok {
				util.GreenBold.Println("Test email sent successfully!")
			}
			return
		}

		if notification, _ := cmd.Flags().GetString("notification"); notification != "" {
			priority, _ := cmd.Flags().GetString("priority")
			sender.SendNotification(notification, priority)
			return
		}

		to, _ := cmd.Flags().GetString("to")
		subject, _ := cmd.Flags().GetString("subject")
		body, _ := cmd.Flags().GetString("body")
		attachment, _ := cmd.Flags().GetString("attachment")
		sender.Send(mail.Message{
			To:         to,
			Subject:    subject,
			Body:       body,
			Attachment: attachment,
		})
	},
}
