// Shared helpers for expirytrack CLI commands.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/mutate"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// flagAssumeYes skips interactive confirmation prompts. Set by the --yes
// flag on destructive commands.
var flagAssumeYes bool

// confirmPrompt asks the user for a y/N confirmation on stdin. Anything
// other than an explicit yes declines.
func confirmPrompt(prompt string) bool {
	if flagAssumeYes {
		return true
	}

	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// reportOutcome prints the downgrade notice, if any, after a mutation.
func reportOutcome(outcome mutate.Outcome, notice string) {
	if outcome == mutate.OutcomeDowngraded && notice != "" {
		fmt.Println(notice)
	}
}

// findItem looks up an item by identifier in the working set.
func findItem(itemID string) (types.Item, bool) {
	for _, item := range sessions.Collections().Items {
		if item.ItemID == itemID {
			return item, true
		}
	}
	return types.Item{}, false
}

// findAccessCode looks up an access code in the working set under
// case-insensitive comparison.
func findAccessCode(code string) (types.AccessCode, bool) {
	want := types.NormalizeCode(code)
	for _, c := range sessions.Collections().AccessCodes {
		if c.Key() == want {
			return c, true
		}
	}
	return types.AccessCode{}, false
}
