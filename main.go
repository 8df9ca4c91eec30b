package main

import (
	"os"

	"github.com/marykwonn/Project-Texas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
