package main

import (
	"os"

	"github.com/robdg22/jetshift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
