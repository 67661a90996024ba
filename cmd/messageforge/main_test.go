package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	cmd := newRootCmd()
	require.NoError(t, cmd.PersistentFlags().Parse(args))
	return cmd.PersistentFlags()
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := loadOptions(testFlags(t), t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, options{Output: "messageforge_gen.go", Color: "auto"}, opts)
}

func TestLoadOptionsPrecedence(t *testing.T) {
	dir := t.TempDir()
	config := "output: from_config.go\ntags: foo\ncolor: never\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messageforge.yaml"), []byte(config), 0o644))
	t.Setenv("MESSAGEFORGE_TAGS", "bar")
	t.Setenv("MESSAGEFORGE_JSON_LOGS", "true")

	opts, err := loadOptions(testFlags(t, "-vv", "--tests", "-o", "from_flag.go"), dir, "")
	require.NoError(t, err)
	assert.Equal(t, "from_flag.go", opts.Output)
	assert.Equal(t, "bar", opts.Tags)
	assert.Equal(t, "never", opts.Color)
	assert.True(t, opts.Tests)
	assert.True(t, opts.JSONLogs)
	assert.Equal(t, 2, opts.Verbose)
}

func TestLoadOptionsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: custom_gen.go\n"), 0o644))

	opts, err := loadOptions(testFlags(t), t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "custom_gen.go", opts.Output)

	_, err = loadOptions(testFlags(t), t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestColorEnabled(t *testing.T) {
	color, err := options{Color: "always"}.colorEnabled()
	require.NoError(t, err)
	assert.True(t, color)

	color, err = options{Color: "never"}.colorEnabled()
	require.NoError(t, err)
	assert.False(t, color)

	_, err = options{Color: "rainbow"}.colorEnabled()
	assert.ErrorContains(t, err, `invalid color mode "rainbow"`)
}

func TestColorize(t *testing.T) {
	msg := "main/main.go:23:6: cannot derive Message: empty category"
	have := colorize(msg)
	assert.Equal(t, "\033[2mmain/main.go:23:6:\033[0m \033[31mcannot derive Message:\033[0m empty category", have)
	assert.Equal(t, "no position", colorize("no position"))
}

func TestStaleOutputs(t *testing.T) {
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, "a_gen.go"), []byte("package a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(wd, "b_gen.go"), []byte("package old\n"), 0o644))

	stale, err := staleOutputs(wd, map[string][]byte{
		"a_gen.go": []byte("package a\n"),
		"b_gen.go": []byte("package b\n"),
		"c_gen.go": []byte("package c\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b_gen.go", "c_gen.go"}, stale)
}

func TestStaleOutputsIgnoresVersion(t *testing.T) {
	const header = "//go:build !messageforge\n\n// Code generated by github.com/kinghuynh/messageforge%s. DO NOT EDIT.\n\npackage a\n"
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, "a_gen.go"), fmt.Appendf(nil, header, ""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(wd, "b_gen.go"), fmt.Appendf(nil, header, "@v1.0.0"), 0o644))

	stale, err := staleOutputs(wd, map[string][]byte{
		"a_gen.go": fmt.Appendf(nil, header, "@v1.2.3"),
		"b_gen.go": fmt.Appendf(nil, header, ""),
	})
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestWriteOutputs(t *testing.T) {
	wd := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)

	err := writeOutputs(cmd, wd, map[string][]byte{
		"b_gen.go": []byte("package b\n"),
		"a_gen.go": []byte("package a\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Generated: a_gen.go\nGenerated: b_gen.go\n", out.String())

	code, err := os.ReadFile(filepath.Join(wd, "b_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(code))
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "messageforge "+Version, strings.TrimSpace(out.String()))
}
