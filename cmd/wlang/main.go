// Command wlang scans and parses while language programs and prints their
// syntax tree.
package main

import (
	"fmt"
	"os"

	"github.com/msto63/wlang/cmd/wlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
