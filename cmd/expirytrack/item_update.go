// Item update command edits an existing tracked item.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

var (
	itemUpdateName       string
	itemUpdateCategory   string
	itemUpdateExpires    string
	itemUpdateNotifyDays int
	itemUpdateQuantity   int
	itemUpdateImageURL   string
)

var itemUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Update an existing item",
	Long: `Update edits fields of an existing item. Only the flags given are
changed; the rest of the record is kept as is.

Example:
  expirytrack item update demo_item_1756646400000 --quantity 12
  expirytrack item update srv_item_42 --expires 2026-10-01 --notify-days 5`,
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringVar(&itemUpdateName, "name", "", "item name")
	itemUpdateCmd.Flags().StringVar(&itemUpdateCategory, "category", "", "item category")
	itemUpdateCmd.Flags().StringVar(&itemUpdateExpires, "expires", "", "expiration date, YYYY-MM-DD")
	itemUpdateCmd.Flags().IntVar(&itemUpdateNotifyDays, "notify-days", 0, "days before expiry to flag the item")
	itemUpdateCmd.Flags().IntVar(&itemUpdateQuantity, "quantity", 0, "quantity on hand")
	itemUpdateCmd.Flags().StringVar(&itemUpdateImageURL, "image-url", "", "image URL")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	item, ok := findItem(args[0])
	if !ok {
		return fmt.Errorf("item %q not found", args[0])
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		item.Name = itemUpdateName
	}
	if flags.Changed("category") {
		item.Category = itemUpdateCategory
	}
	if flags.Changed("expires") {
		if _, err := time.Parse(types.ExpirationDateLayout, itemUpdateExpires); err != nil {
			return fmt.Errorf("invalid --expires %q: want YYYY-MM-DD", itemUpdateExpires)
		}
		item.ExpirationDate = itemUpdateExpires
	}
	if flags.Changed("notify-days") {
		item.NotificationDays = itemUpdateNotifyDays
	}
	if flags.Changed("quantity") {
		item.Quantity = itemUpdateQuantity
	}
	if flags.Changed("image-url") {
		item.ImageURL = itemUpdateImageURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), appConfig.RequestTimeout)
	defer cancel()

	result, err := mutations.UpdateItem(ctx, item)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if flagJSON {
		return printJSON(result.Item)
	}

	fmt.Printf("Updated item %s (%s)\n", result.Item.ItemID, result.Outcome)
	reportOutcome(result.Outcome, result.Notice)
	return nil
}
