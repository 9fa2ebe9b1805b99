package config

import (
	"fmt"
	"strings"

	"ssh-roads/internal/config"
	"ssh-roads/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Set a setting",
		Long: "Set a persistent setting. Omit the value to clear it.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  ssh-roads config set history off\n" +
			"  ssh-roads config set expect-timeout 30",
		Args:         cobra.RangeArgs(1, 2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(util.NormalizeKey(args[0]))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	var value string
	if len(args) == 2 {
		value = util.NormalizeKey(args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := spec.Apply(cfg, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", spec.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}
