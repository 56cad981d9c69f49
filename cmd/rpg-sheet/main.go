// Package main is the entry point for the character sheet generator
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		os.Exit(1)
	}
}
