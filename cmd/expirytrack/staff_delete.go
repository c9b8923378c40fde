// Staff delete command removes an access code and its staff member.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var staffDeleteCmd = &cobra.Command{
	Use:   "delete <access-code>",
	Short: "Delete an access code and its staff member",
	Long: `Delete removes an access code together with the staff member it
authenticates. Admin only. Asks for confirmation unless --yes is given.

Example:
  expirytrack staff delete K9QRT
  expirytrack staff delete K9QRT --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runStaffDelete,
}

func init() {
	staffDeleteCmd.Flags().BoolVar(&flagAssumeYes, "yes", false, "skip the confirmation prompt")
}

func runStaffDelete(cmd *cobra.Command, args []string) error {
	code, ok := findAccessCode(args[0])
	if !ok {
		return fmt.Errorf("access code %q not found", args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), appConfig.RequestTimeout)
	defer cancel()

	result, err := mutations.DeleteAccessCode(ctx, code)
	if err != nil {
		return fmt.Errorf("delete access code: %w", err)
	}

	fmt.Printf("Removed staff %s and access code %s (%s)\n", code.StaffID, code.Code, result.Outcome)
	reportOutcome(result.Outcome, result.Notice)
	return nil
}
