package main

import (
	"os"

	"github.com/matheusgomes28/transactions/cmd/transactions/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
