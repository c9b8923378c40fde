// Version command for the expirytrack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// appVersion is the CLI version string.
const appVersion = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the expirytrack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("expirytrack", appVersion)
	},
}
