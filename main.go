// Package main provides the entrypoint for event-schema.
package main

import (
	"os"

	"github.com/isometry/event-schema/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
