package main

import "github.com/trinity-tools/trinity-mail/cmd"

func main() {
	cmd.Execute()
}
