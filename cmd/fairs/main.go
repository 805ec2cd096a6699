// Command fairs splits restaurant bills: it runs the local API used by the
// app, parses OCR receipt text and prints allocations from the terminal.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
