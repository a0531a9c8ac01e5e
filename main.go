package main

import (
	"os"

	"github.com/sutticue/flashcard-game/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
