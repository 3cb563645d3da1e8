package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK and Fail; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func OK(msg string)   { fmt.Fprintln(stdout, current.Success.Render("✔ "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, current.Error.Render("✖ "+msg)) }

// Println writes a plain line to the OK writer.
func Println(s string) { fmt.Fprintln(stdout, s) }
