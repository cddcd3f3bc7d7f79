// Package main is the entry point for the sidconf CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/sidconf/cmd/sidconf/commands"
	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *sidconferrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(sidconferrors.ExitUser)
}
