// main is the entry point for the studentrisk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/studentrisk/cmd"
	"github.com/huangsam/studentrisk/internal/roster"
)

func main() {
	defer roster.CloseRoster()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
