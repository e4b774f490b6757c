package main

import (
	"os"

	"github.com/sbilibin2017/equiv/cmd/equiv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
