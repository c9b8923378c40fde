// Item add command creates a new tracked item.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/mutate"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

var (
	itemAddName       string
	itemAddCategory   string
	itemAddExpires    string
	itemAddNotifyDays int
	itemAddQuantity   int
	itemAddImageURL   string
	itemAddStore      string
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new item",
	Long: `Add creates a new tracked item.

The item is written to the backend; when the backend is unavailable the
item is kept locally with an offline identifier instead.

Example:
  expirytrack item add --name "Milk 1L" --expires 2026-09-15
  expirytrack item add --name "Yogurt" --expires 2026-09-05 --notify-days 7 --quantity 24`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().StringVar(&itemAddName, "name", "", "item name (required)")
	itemAddCmd.Flags().StringVar(&itemAddCategory, "category", "", "item category")
	itemAddCmd.Flags().StringVar(&itemAddExpires, "expires", "", "expiration date, YYYY-MM-DD (required)")
	itemAddCmd.Flags().IntVar(&itemAddNotifyDays, "notify-days", 3, "days before expiry to flag the item")
	itemAddCmd.Flags().IntVar(&itemAddQuantity, "quantity", 1, "quantity on hand")
	itemAddCmd.Flags().StringVar(&itemAddImageURL, "image-url", "", "image URL")
	itemAddCmd.Flags().StringVar(&itemAddStore, "store", "", "store code (default: session store)")
	_ = itemAddCmd.MarkFlagRequired("name")
	_ = itemAddCmd.MarkFlagRequired("expires")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	if _, err := time.Parse(types.ExpirationDateLayout, itemAddExpires); err != nil {
		return fmt.Errorf("invalid --expires %q: want YYYY-MM-DD", itemAddExpires)
	}

	ctx, cancel := context.WithTimeout(context.Background(), appConfig.RequestTimeout)
	defer cancel()

	result, err := mutations.AddItem(ctx, mutate.ItemDraft{
		Name:             itemAddName,
		Category:         itemAddCategory,
		ExpirationDate:   itemAddExpires,
		NotificationDays: itemAddNotifyDays,
		Quantity:         itemAddQuantity,
		ImageURL:         itemAddImageURL,
		StoreCode:        itemAddStore,
	})
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if flagJSON {
		return printJSON(result.Item)
	}

	fmt.Printf("Added item %s (%s)\n", result.Item.ItemID, result.Outcome)
	reportOutcome(result.Outcome, result.Notice)
	return nil
}
