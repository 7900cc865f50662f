// Package main provides the entrypoint for tag-enforcer.
package main

import (
	"os"

	"github.com/isometry/tag-enforcer/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
