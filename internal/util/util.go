package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var Red = color.New(color.FgRed)
var Cyan = color.New(color.FgCyan)
var CyanBold = color.New(color.FgCyan).Add(color.Bold)
var Green = color.New(color.FgGreen)
var GreenBold = color.New(color.FgGreen).Add(color.Bold)
var Magenta = color.New(color.FgMagenta)

// Prompter abstracts operator input so interactive flows can run against
// a terminal in production and scripted answers in tests.
type Prompter interface {
	ReadLine() string
	ReadSecret() string
}

// TerminalPrompter reads answers from stdin. Secrets are read without
// echoing them back to the terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) ReadLine() string {
	return ScanlineTrim()
}

func (TerminalPrompter) ReadSecret() string {
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		// stdin is not a terminal, fall back to a plain read
		return ScanlineTrim()
	}
	return strings.TrimSpace(string(secret))
}

func Scanline() string {
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return scanner.Text()
	}
	color.Red("\nInterrupted")
	os.Exit(1)
	return ""
}

// ScanlineTrim : Scans input and trims
func ScanlineTrim() string {
	return strings.TrimSpace(Scanline())
}
