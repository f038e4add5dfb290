// Command notifyctl shows desktop notifications and replaces them in place.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
