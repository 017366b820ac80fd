package display

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Failure prints a red, single-line error message to stderr.
func Failure(msg string) {
	fmt.Fprintln(os.Stderr, text.FgRed.Sprint(msg))
}

// Success prints a green, single-line confirmation to stdout.
func Success(msg string) {
	fmt.Println(text.FgGreen.Sprint(msg))
}
