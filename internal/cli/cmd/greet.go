package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/twinview/internal/application/usecase"
	"github.com/bnema/twinview/internal/cli/styles"
)

func newGreetCmd(renderer *styles.Renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "greet <name>",
		Short: "Print the demo greeting the control panel shows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := usecase.NewGreetUseCase().Execute(context.Background(), usecase.GreetInput{Name: args[0]})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderGreeting(msg))
			return err
		},
	}
}
