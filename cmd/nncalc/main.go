package main

import (
	"os"

	"nncalc/cmd/nncalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
