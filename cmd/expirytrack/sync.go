// Sync command refetches the working set from the backend.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refetch data from the backend",
	Long: `Sync refetches the working set for the current session.

Admins refetch everything; staff refetch their own store. A demo session
has nothing to sync. A fetch failure keeps the cached data in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), appConfig.LoginTimeout)
		defer cancel()

		if err := sessions.Sync(ctx); err != nil {
			return fmt.Errorf("sync: %w", err)
		}

		col := sessions.Collections()
		fmt.Printf("Synced: %d item(s), %d staff, %d access code(s)\n",
			len(col.Items), len(col.Staff), len(col.AccessCodes))
		return nil
	},
}
