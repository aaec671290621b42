// Package main provides the gridfield CLI: generate synthetic spatial
// grid datasets and analyze their adjacency structure from the shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
