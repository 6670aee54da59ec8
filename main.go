package main

import (
	"os"

	"github.com/sambit/prepdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
