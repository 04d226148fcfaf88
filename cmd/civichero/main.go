package main

import (
	"os"

	"github.com/civichero/civichero-backend/cmd/civichero/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
