// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oelhwry/folio/config"
	"github.com/oelhwry/folio/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and write the configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Long: `Writes the effective settings (defaults, config file, FOLIO_* environment
and flags) to the user config file, or the system one with --system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			system, _ := cmd.Flags().GetBool("system")
			if err := config.WriteConfigFile(&appConfig, system); err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().Bool("system", false, "Write the system wide config file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, system := range []bool{false, true} {
				path, err := config.GetConfigPath(system)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
