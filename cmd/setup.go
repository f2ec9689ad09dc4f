package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trinity-tools/trinity-mail/internal/config"
	"github.com/trinity-tools/trinity-mail/internal/mail"
	"github.com/trinity-tools/trinity-mail/internal/util"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure email settings interactively",
	Long: `Walks through provider selection, SMTP credentials and the default
recipient, then writes the configuration file. An existing configuration is
replaced without asking. The password is read without echoing it.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Collect(util.TerminalPrompter{})
		if err != nil {
			util.LogError(util.InputError, "collecting configuration", err)
			os.Exit(1)
		}

		if err := config.Save(*cfg, configPath); err != nil {
			util.LogError(util.ConfigError, "saving configuration", err)
			os.Exit(1)
		}
		util.Green.Printf("\nConfiguration saved to %s\n", configPath)
		util.Green.Println("File permissions set to owner read/write only")

		util.Cyan.Printf("\nWould you like to send a test email? (y/n): ")
		answer := util.ScanlineTrim()
		if answer == "y" || answer == "Y" || answer == "yes" {
			util.Cyan.Println("\nSending test email...")
			sender := mail.NewSMTPMailer(config.NewConfigProvider(cfg))
			ok := sender.Send(mail.Message{
				Subject: "🎉 Trinity Email Test",
				Body: "Congratulations! Your Trinity email configuration is working perfectly.\n\n" +
					"You can now use Trinity to send emails, notifications, and reports.",
			})
			if ok {
				util.GreenBold.Println("Test email sent successfully!")
			} else {
				util.Red.Println("Test failed. Please check your configuration.")
			}
		}
	},
}
