package config

import (
	"fmt"
	"io"
	"os"
)

// Exit hooks. Tests swap them to observe a fatal exit without ending the
// test binary.
var (
	exitWriter io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf writes a formatted error line to stderr and exits with code 1.
// Entry points call it once flags, config or the command itself fail.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitWriter, format+"\n", args...)
	exitFunc(1)
}
