package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/twinview/internal/cli/styles"
)

func newVersionCmd(renderer *styles.Renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderVersion(buildInfo))
			return err
		},
	}
}
