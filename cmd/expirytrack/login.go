// Login command authenticates and opens a session.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

var (
	loginRole       string
	loginCredential string
	loginDemo       bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and open a session",
	Long: `Login authenticates against the backend and opens a session.

When the backend rejects or cannot be reached, the credential falls through
a local resolution chain, ending with a case-insensitive access code lookup
in the cached data. A session opened that way works offline.

Example:
  expirytrack login --role staff --credential K9QRT
  expirytrack login --role admin --credential hunter2
  expirytrack login --role staff --demo`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginRole, "role", types.RoleStaff, "login role (admin or staff)")
	loginCmd.Flags().StringVar(&loginCredential, "credential", "", "password or access code")
	loginCmd.Flags().BoolVar(&loginDemo, "demo", false, "open a demo session without contacting the backend")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if !types.ValidRole(loginRole) {
		return fmt.Errorf("invalid role %q (want admin or staff)", loginRole)
	}
	if loginCredential == "" && !loginDemo {
		return fmt.Errorf("either --credential or --demo is required")
	}

	// The watchdog bounds the whole attempt so a slow backend still leaves
	// time for the local fallback chain.
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.LoginTimeout)
	defer cancel()

	identity, err := sessions.Login(ctx, loginRole, loginCredential, loginDemo)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if flagJSON {
		return printJSON(identity)
	}

	mode := "online"
	if identity.IsDemo {
		mode = "offline/demo"
	}
	fmt.Printf("Logged in as %s (%s, store %s, %s)\n", identity.Name, identity.Role, identity.StoreID, mode)
	return nil
}
