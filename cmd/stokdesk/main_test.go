package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stokdesk/tui-go/internal/config"
	"github.com/stokdesk/tui-go/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs a fresh command tree and returns what it printed to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{}
	cmd := NewRootCommand(opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := execute(context.Background(), opts, cmd)
	assert.Nil(t, opts.closeLog, "log left open")
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stokdesk dev\n", out)
}

func TestVersionSkipsConfigAndLog(t *testing.T) {
	dir := isolate(t)
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("theme: neon\n"), 0o644))

	out, err := runCLI(t, "--config", bad, "version")
	require.NoError(t, err)
	assert.Equal(t, "stokdesk dev\n", out)
	assert.NoDirExists(t, filepath.Join(dir, ".stokdesk"))
}

func TestMenuLeaves(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "menu", "--leaves")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, menu.Default().Leaves(), lines)
	assert.Contains(t, lines, "Stok Listesi")
}

func TestMenuTreeFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`items:
  - name: Stoklar
    icon: "▣"
    children: [Stok Listesi, Birimler]
  - name: Hızlı Satış
`), 0o644))

	out, err := runCLI(t, "--menu", path, "menu")
	require.NoError(t, err)
	assert.Equal(t, "▣ Stoklar\n    Stok Listesi\n    Birimler\n· Hızlı Satış\n", out)
}

func TestMenuYAMLRoundTrips(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "menu", "--yaml")
	require.NoError(t, err)

	tree, err := menu.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, menu.Default(), tree)
}

func TestMenuRejectsInvalidFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: A\n  - name: A\n"), 0o644))

	_, err := runCLI(t, "--menu", path, "menu", "--leaves")
	assert.Error(t, err)
}

func TestInvalidThemeFlag(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--theme", "neon", "menu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")
}

func TestInitWritesProjectConfig(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "--theme", "light", "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.ProjectConfigPath())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.ThemeLight, cfg.Theme)

	_, err = runCLI(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = runCLI(t, "init", "--force")
	assert.NoError(t, err)
}

func TestInitWithMenu(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "init", "--with-menu")
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".stokdesk", "menu.yaml"), cfg.MenuFile)

	tree, err := menu.Load(cfg.MenuFile)
	require.NoError(t, err)
	assert.Equal(t, menu.Default(), tree)
}

func TestInitWithMenuLeavesNothingOnConflict(t *testing.T) {
	isolate(t)
	menuPath := filepath.Join(".stokdesk", "menu.yaml")

	_, err := runCLI(t, "init")
	require.NoError(t, err)

	_, err = runCLI(t, "init", "--with-menu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ProjectConfigPath())
	assert.NoFileExists(t, menuPath)

	// the retry still reports the config, not a stray menu file
	_, err = runCLI(t, "init", "--with-menu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ProjectConfigPath())

	_, err = runCLI(t, "init", "--with-menu", "--force")
	require.NoError(t, err)
	assert.FileExists(t, menuPath)
}

func TestInitRefusesExistingMenu(t *testing.T) {
	isolate(t)
	menuPath := filepath.Join(".stokdesk", "menu.yaml")
	require.NoError(t, os.MkdirAll(".stokdesk", 0o755))
	require.NoError(t, os.WriteFile(menuPath, []byte("items:\n  - name: Kendi Menüm\n"), 0o644))

	_, err := runCLI(t, "init", "--with-menu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), menuPath)
	assert.NoFileExists(t, config.ProjectConfigPath())
}

func TestFailedCommandClosesLog(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--debug", "--menu", "missing.yaml", "menu")
	require.Error(t, err)

	data, err := os.ReadFile(config.DefaultConfig().Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config loaded")
	assert.Contains(t, string(data), "command failed")
}
