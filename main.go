// main is the entry point for the peerscore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/peerscore/peerscore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
