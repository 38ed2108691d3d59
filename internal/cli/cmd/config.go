package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/twinview/internal/cli/styles"
	"github.com/bnema/twinview/internal/infrastructure/config"
)

func newConfigCmd(renderer *styles.Renderer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigPath(path))
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Load the config file (creating it with defaults if missing), apply
TWINVIEW_* environment overrides and print the result.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := config.NewManager()
			if err != nil {
				return err
			}
			if err := mgr.Load(); err != nil {
				return err
			}
			data, err := config.EncodeTOML(mgr.Get())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	configCmd.AddCommand(pathCmd, showCmd, schemaCmd)
	return configCmd
}
