// Staff command group.
package main

import "github.com/spf13/cobra"

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff members and access codes",
}

func init() {
	staffCmd.AddCommand(staffListCmd)
	staffCmd.AddCommand(staffAddCmd)
	staffCmd.AddCommand(staffDeleteCmd)
}
