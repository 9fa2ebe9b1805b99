package server

import (
	"encoding/json"
	"fmt"

	"ssh-roads/internal/menu"
	"ssh-roads/internal/placeholder"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured servers",
		Long: `Print the server menu without connecting.

JSON output shows entries exactly as written in servers.json, so
placeholders such as $PASSWORD are never expanded.

Examples:
  ssh-roads list
  ssh-roads list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	set, err := loadServers(cmd)
	if err != nil {
		return err
	}

	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	case "table", "":
		if len(set.Servers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No servers found.")
			return nil
		}
		menu.Present(cmd.OutOrStdout(), set.Servers, placeholder.New(cmd.ErrOrStderr()))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}
