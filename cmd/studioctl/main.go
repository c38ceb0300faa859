// Command studioctl is the operator tool for the studio backend: it prints
// scroll layouts, simulates nav scrolls, mints admin tokens and sends test
// emails.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
