// Item delete command removes a tracked item.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete an item",
	Long: `Delete removes an item. The local record is removed even when the
backend cannot be reached.

Example:
  expirytrack item delete srv_item_42`,
	Args: cobra.ExactArgs(1),
	RunE: runItemDelete,
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	if _, ok := findItem(args[0]); !ok {
		return fmt.Errorf("item %q not found", args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), appConfig.RequestTimeout)
	defer cancel()

	result, err := mutations.DeleteItem(ctx, args[0])
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	fmt.Printf("Deleted item %s (%s)\n", args[0], result.Outcome)
	reportOutcome(result.Outcome, result.Notice)
	return nil
}
