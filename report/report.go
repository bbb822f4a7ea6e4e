// Package report prints the outcome of a command to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Deleted confirms the removal of n fasts from the history.
func Deleted(n int) {
	if n == 1 {
		pterm.Success.Println("1 fast deleted")
		return
	}

	pterm.Success.Printfln("%d fasts deleted", n)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a failure status.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
