package main

import (
	"os"

	"github.com/codealpha/showcase/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
