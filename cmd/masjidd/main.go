package main

import (
	"os"

	"github.com/RiyadTangil/masjid-directory/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
