// Staff add command provisions a staff member with an access code.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	staffAddStore string
	staffAddID    string
)

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Provision a staff member and access code",
	Long: `Add provisions a new staff member together with a fresh access code.
Admin only.

When the backend is unavailable, the pair is generated locally and kept so
the new staff member can log in against the cache.

Example:
  expirytrack staff add --store C42
  expirytrack staff add --store C04 --staff-id night_shift_3`,
	Args: cobra.NoArgs,
	RunE: runStaffAdd,
}

func init() {
	staffAddCmd.Flags().StringVar(&staffAddStore, "store", "", "store code (required)")
	staffAddCmd.Flags().StringVar(&staffAddID, "staff-id", "", "staff identifier (default: generated)")
	_ = staffAddCmd.MarkFlagRequired("store")
}

func runStaffAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.RequestTimeout)
	defer cancel()

	result, err := mutations.AddStaffAndCode(ctx, staffAddStore, staffAddID)
	if err != nil {
		return fmt.Errorf("add staff: %w", err)
	}

	if flagJSON {
		return printJSON(staffRow{Staff: result.Staff, Code: result.Code})
	}

	fmt.Printf("Provisioned staff %s with access code %s (%s)\n",
		result.Staff.StaffID, result.Code.Code, result.Outcome)
	reportOutcome(result.Outcome, result.Notice)
	return nil
}
