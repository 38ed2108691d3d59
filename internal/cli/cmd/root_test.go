package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/twinview/internal/domain/build"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ENV", "")
	require.NoError(t, os.Unsetenv("ENV"))
	t.Setenv("XDG_CONFIG_HOME", home)
	return home
}

func TestGreetCmd(t *testing.T) {
	out, err := execute(t, "greet", "Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello, Ada! You've been greeted from Go!")
}

func TestGreetCmd_RequiresName(t *testing.T) {
	_, err := execute(t, "greet")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "deadbeef", BuildDate: "today", GoVersion: "go1.25.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "deadbeef")
}

func TestConfigPathCmd(t *testing.T) {
	home := isolateConfig(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "twinview", "config.toml"))
}

func TestConfigShowCmd_CreatesDefaults(t *testing.T) {
	home := isolateConfig(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[notifier]")
	assert.Contains(t, out, "mode = 'hook'")
	assert.FileExists(t, filepath.Join(home, "twinview", "config.toml"))
}

func TestConfigSchemaCmd(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestRunCmdIsRegistered(t *testing.T) {
	cmd, _, err := NewRootCmd().Find([]string{RunCommand})
	require.NoError(t, err)
	assert.Equal(t, RunCommand, cmd.Name())
}
