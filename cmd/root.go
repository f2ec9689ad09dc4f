package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trinity-tools/trinity-mail/internal/config"
	"github.com/trinity-tools/trinity-mail/internal/util"
)

func init() {
	configPath, err := config.DefaultConfigPath()
	if err != nil {
		util.Red.Println("Error setting default config path: ", err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringP("config", "c", configPath, "Path to config file")
}

var rootCmd = &cobra.Command{
	Use:   "trinity-mail",
	Short: "Compose and send email through an SMTP relay",
	Long: `trinity-mail is a small command line client for sending email
(plain text, HTML and attachments) through an SMTP relay, using a locally
stored JSON configuration file.

Run 'trinity-mail quickstart' or 'trinity-mail setup' once to create the
configuration, then 'trinity-mail send' to dispatch messages, notifications
and reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help if no command is provided
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
