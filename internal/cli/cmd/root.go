// Package cmd provides Cobra CLI commands for twinview.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/twinview/internal/cli/styles"
	"github.com/bnema/twinview/internal/domain/build"
)

var buildInfo build.Info

// RunCommand is the subcommand that starts the GUI. main handles it before
// cobra runs so GTK owns the main OS thread.
const RunCommand = "run"

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	renderer := styles.NewRenderer(styles.NewTheme())

	root := &cobra.Command{
		Use:   "twinview",
		Short: "Two synchronized WebKit panels: a control panel and a content panel",
		Long: `twinview opens two windows side by side. The left control panel sends
navigation commands to the right content panel, and every navigation in the
content panel is reported back to the control panel.

Run 'twinview' or 'twinview run' to launch the windows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(),
		newGreetCmd(renderer),
		newConfigCmd(renderer),
		newVersionCmd(renderer),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.NewRenderer(nil).RenderError(err))
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// newRunCmd is a placeholder for help - actual execution is in main.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   RunCommand,
		Short: "Launch the control and content panels",
		Long: `Launch the GTK4 windows.

The control panel opens at 300x800, the content panel at 900x800 showing
https://google.com. Navigation detection follows notifier.mode in the config.`,
		Run: func(_ *cobra.Command, _ []string) {},
	}
}
