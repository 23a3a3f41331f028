package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// fatal reports a command failure on stderr and exits non-zero.
// Commands call it instead of returning errors up through cobra.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "notekeeper: %s: %v\n", msg, err)
	os.Exit(1)
}
