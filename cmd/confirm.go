package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// yesConfirm skips interactive confirmation for commands writing to the host.
var yesConfirm bool

// confirmAction prompts the user for confirmation or uses the --yes flag.
func confirmAction(prompt string) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
