package server

import (
	"fmt"

	"ssh-roads/internal/servers"
	"ssh-roads/internal/tui/styles"

	"github.com/spf13/cobra"
)

// CheckCommand returns the "check" command, which lints servers.json.
func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check servers.json for mistakes",
		Long: `Report entries in servers.json that cannot be connected to: unknown
connection types, missing fields, and duplicate keys (only the first entry
with a given key is ever used).`,
		Args:         cobra.NoArgs,
		RunE:         runCheck,
		SilenceUsage: true,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	set, err := loadServers(cmd)
	if err != nil {
		return err
	}

	problems := set.Validate()
	if len(problems) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render(
			fmt.Sprintf("%s: %d server(s), no problems found.", servers.Path(), len(set.Servers))))
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
	}
	return fmt.Errorf("%s: %d problem(s) found", servers.Path(), len(problems))
}
