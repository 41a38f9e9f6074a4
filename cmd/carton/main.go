// Entry point for the carton CLI.
// Build with: go build -o bin/carton ./cmd/carton
// Usage: carton --file data.json <command> [args]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
