// Command azalea is the CLI driver for the Azalea compiler front end: a
// thin shell over internal/compile. It owns file I/O and flag
// parsing; no compiler business logic lives here.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
