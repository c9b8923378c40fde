// Status command shows the session and cache state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusReport is the JSON shape of the status command output.
type statusReport struct {
	LoggedIn bool   `json:"loggedIn"`
	StaffID  string `json:"staffId,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	StoreID  string `json:"storeId,omitempty"`
	Demo     bool   `json:"demo,omitempty"`
	Items    int    `json:"items"`
	Staff    int    `json:"staff"`
	Codes    int    `json:"accessCodes"`
	Stores   int    `json:"stores"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and cached data summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		col := sessions.Collections()
		report := statusReport{
			Items:  len(col.Items),
			Staff:  len(col.Staff),
			Codes:  len(col.AccessCodes),
			Stores: len(col.Stores),
		}

		if identity, ok := sessions.Identity(); ok {
			report.LoggedIn = true
			report.StaffID = identity.StaffID
			report.Name = identity.Name
			report.Role = identity.Role
			report.StoreID = identity.StoreID
			report.Demo = identity.IsDemo
		}

		if flagJSON {
			return printJSON(report)
		}

		if report.LoggedIn {
			mode := "online"
			if report.Demo {
				mode = "offline/demo"
			}
			fmt.Printf("Session: %s (%s, store %s, %s)\n", report.Name, report.Role, report.StoreID, mode)
		} else {
			fmt.Println("Session: none")
		}
		fmt.Printf("Cached:  %d item(s), %d staff, %d access code(s), %d store(s)\n",
			report.Items, report.Staff, report.Codes, report.Stores)
		return nil
	},
}
