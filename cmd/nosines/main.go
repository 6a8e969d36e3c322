// Package main is the entry point for the nosines CLI.
package main

import (
	"os"

	"github.com/f3rmion/nosines/cmd/nosines/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
