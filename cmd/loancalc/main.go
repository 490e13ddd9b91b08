package main

import (
	"os"

	"github.com/cloud-ru/loancalc-go/cmd/loancalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
