package main

import (
	"os"

	"github.com/teamwerk/tender-scout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
