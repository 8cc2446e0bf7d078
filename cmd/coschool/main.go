package main

import (
	"os"

	"coschooldata/cmd/coschool/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
