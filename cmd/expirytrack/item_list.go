// Item list command displays the cached working set.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

var itemListState string

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked items",
	Long: `List displays the items in the working set.

Use --state to filter by expiry state.

Example:
  expirytrack item list
  expirytrack item list --state expiring
  expirytrack item list --json`,
	Args: cobra.NoArgs,
	RunE: runItemList,
}

func init() {
	itemListCmd.Flags().StringVar(&itemListState, "state", "", "filter by expiry state (expired, expiring, fresh)")
}

func runItemList(cmd *cobra.Command, args []string) error {
	if _, ok := sessions.Identity(); !ok {
		return types.ErrNoSession
	}

	now := time.Now()
	items := sessions.Collections().Items
	if itemListState != "" {
		filtered := make([]types.Item, 0, len(items))
		for _, item := range items {
			if item.ExpiryState(now) == itemListState {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if flagJSON {
		return printJSON(items)
	}

	printItemTable(items, now)
	return nil
}

// printItemTable prints items in a human-readable table format.
func printItemTable(items []types.Item, now time.Time) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tEXPIRES\tQTY\tSTATE")
	fmt.Fprintln(w, "--\t----\t--------\t-------\t---\t-----")
	for _, item := range items {
		name := item.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			item.ItemID,
			name,
			item.Category,
			item.ExpirationDate,
			item.Quantity,
			item.ExpiryState(now),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d item(s)\n", len(items))
}
