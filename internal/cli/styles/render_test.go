package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/twinview/internal/cli/styles"
	"github.com/bnema/twinview/internal/domain/build"
)

func TestRenderer_RenderGreeting(t *testing.T) {
	r := styles.NewRenderer(nil)
	out := r.RenderGreeting("Hello, Ada! You've been greeted from Go!")
	require.Contains(t, out, "Hello, Ada!")
}

func TestRenderer_RenderConfigPath(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())
	out := r.RenderConfigPath("/tmp/twinview/config.toml")
	require.Contains(t, out, "Config")
	require.Contains(t, out, "config.toml")
}

func TestRenderer_RenderError(t *testing.T) {
	out := styles.NewRenderer(nil).RenderError(errors.New("Invalid URL format"))
	require.Contains(t, out, "Invalid URL format")
}

func TestRenderer_RenderVersion(t *testing.T) {
	out := styles.NewRenderer(nil).RenderVersion(build.Info{
		Version:   "v0.1.0",
		Commit:    "abc123",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.3",
	})
	require.Contains(t, out, "v0.1.0")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, "go1.25.3")
	require.Contains(t, out, build.RepoURL())
}
