package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trinity-tools/trinity-mail/internal/config"
	"github.com/trinity-tools/trinity-mail/internal/util"
)

func init() {
	rootCmd.AddCommand(quickstartCmd)
}

var quickstartCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Create a default email configuration without any prompts",
	Long: `Writes a placeholder Gmail configuration for editing by hand. If the
configuration file already exists it is left untouched and printed with the
password masked.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		util.CyanBold.Println("Trinity Quick Email Setup")

		cfg, created, err := config.EnsureDefault(configPath)
		if err != nil {
			util.LogError(util.ConfigError, "creating default configuration", err)
			os.Exit(1)
		}

		if !created {
			util.Red.Printf("Configuration file %s already exists!\n", configPath)
			util.Cyan.Println("Current configuration:")
			for _, field := range cfg.Redacted() {
				util.Cyan.Printf("  %s: %s\n", field.Key, field.Value)
			}
			return
		}

		util.Green.Printf("Configuration template saved to %s\n", configPath)
		util.Green.Println("File permissions set to owner read/write only")
		util.CyanBold.Println("\nNext steps:")
		util.Cyan.Println("1. Edit the file and replace the placeholders with your account settings")
		util.Cyan.Println("2. Gmail users: generate an App Password at https://myaccount.google.com/apppasswords")
		util.Cyan.Println("   and use it as sender_password instead of your regular password")
		util.Cyan.Println("3. Run 'trinity-mail send --test' to verify the configuration")
	},
}
