package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trinity-tools/trinity-mail/internal/util"
)

// Well known providers offered by the interactive setup, all reachable
// through STARTTLS on the standard submission port.
var providers = []struct {
	Name   string
	Server string
}{
	{"Gmail", "smtp.gmail.com"},
	{"Outlook/Hotmail", "smtp-mail.outlook.com"},
	{"Yahoo", "smtp.mail.yahoo.com"},
}

// Collect walks the operator through provider selection and credentials and
// returns the resulting configuration. Nothing is written to disk here.
func Collect(prompt util.Prompter) (*Config, error) {
	util.CyanBold.Println("Trinity Email Configuration Setup")

	c := Config{Port: DefaultPort}

	util.Cyan.Println("\nSelect your email provider:")
	for i, p := range providers {
		util.Cyan.Printf("%d. %s\n", i+1, p.Name)
	}
	util.Cyan.Printf("%d. Custom SMTP\n", len(providers)+1)
	util.Cyan.Printf("\nEnter choice (1-%d): ", len(providers)+1)

	switch prompt.ReadLine() {
	case "1":
		c.Server = providers[0].Server
		util.Cyan.Println("\nGmail selected")
		util.Cyan.Println("Note: You'll need to use an App Password, not your regular password")
		util.Cyan.Println("Generate one at: https://myaccount.google.com/apppasswords")
	case "2":
		c.Server = providers[1].Server
		util.Cyan.Println("\nOutlook selected")
	case "3":
		c.Server = providers[2].Server
		util.Cyan.Println("\nYahoo selected")
	default:
		util.Cyan.Printf("SMTP Server: ")
		c.Server = prompt.ReadLine()
		util.Cyan.Printf("SMTP Port (usually 587): ")
		port, err := ParsePort(prompt.ReadLine())
		if err != nil {
			return nil, err
		}
		c.Port = port
	}

	util.Cyan.Println("\nEnter your email credentials:")
	util.Cyan.Printf("Your email address: ")
	c.Sender = prompt.ReadLine()
	util.Cyan.Printf("Your password (or app password): ")
	c.Password = prompt.ReadSecret()

	util.Cyan.Printf("Default recipient [%s]: ", c.Sender)
	c.Recipient = prompt.ReadLine()
	if c.Recipient == "" {
		c.Recipient = c.Sender
	}

	return &c, nil
}

// ParsePort interprets the interactive port answer. Blank means the
// standard submission port, anything else must be an integer.
func ParsePort(answer string) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid SMTP port %q: %w", answer, err)
	}
	return port, nil
}
