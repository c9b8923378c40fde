// Staff list command displays staff members with their access codes.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff members and their access codes",
	Args:  cobra.NoArgs,
	RunE:  runStaffList,
}

// staffRow pairs a staff record with its access code for display.
type staffRow struct {
	Staff types.Staff      `json:"staff"`
	Code  types.AccessCode `json:"accessCode"`
}

func runStaffList(cmd *cobra.Command, args []string) error {
	identity, ok := sessions.Identity()
	if !ok {
		return types.ErrNoSession
	}
	if identity.Role != types.RoleAdmin {
		return types.ErrPermissionDenied
	}

	col := sessions.Collections()
	byStaff := make(map[string]types.AccessCode, len(col.AccessCodes))
	for _, code := range col.AccessCodes {
		byStaff[code.StaffID] = code
	}

	rows := make([]staffRow, 0, len(col.Staff))
	for _, s := range col.Staff {
		rows = append(rows, staffRow{Staff: s, Code: byStaff[s.StaffID]})
	}

	if flagJSON {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No staff found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "STAFF ID\tNAME\tSTORE\tCODE")
	fmt.Fprintln(w, "--------\t----\t-----\t----")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			row.Staff.StaffID,
			row.Staff.Name,
			row.Staff.StoreID,
			row.Code.Code,
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d staff\n", len(rows))
	return nil
}
