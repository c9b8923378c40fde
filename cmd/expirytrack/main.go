// Package main provides the expirytrack CLI, an offline-first inventory
// expiry tracking client for multi-store retail chains.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
