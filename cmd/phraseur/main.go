// Package main implements the phraseur command line interface: French
// practice-sentence generation backed by a language model, a Postgres store,
// and a small HTTP API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
