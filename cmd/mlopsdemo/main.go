package main

import "github.com/emiliopalmerini/mlopsdemo/internal/cli"

func main() {
	cli.Execute()
}
