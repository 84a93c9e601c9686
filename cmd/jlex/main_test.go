package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Example.java")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	// Flags keep their values between executions of the same command tree.
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	require.NoError(t, rootCmd.PersistentFlags().Set("format", "text"))
	require.NoError(t, tokensCmd.Flags().Set("skip-invalid", "false"))
	require.NoError(t, tokensCmd.Flags().Set("eof", "false"))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTokensText(t *testing.T) {
	path := writeSource(t, "package example;\npublic class Example {}")
	out, _, err := execute(t, "", "tokens", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], path+":1:1")
	assert.Contains(t, lines[0], "'package'")
	assert.Contains(t, lines[3], path+":2:1")
	assert.Contains(t, lines[5], `identifier`)
	assert.Contains(t, lines[5], `"Example"`)
}

func TestTokensJSONFromStdin(t *testing.T) {
	out, _, err := execute(t, "@ int x;", "tokens", "--format", "json", "--eof", "-")
	require.NoError(t, err)

	var records []tokenRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 5)
	assert.Equal(t, "invalid", records[0].Kind)
	assert.Equal(t, "unrecognized character", records[0].Reason)
	assert.Equal(t, "'int'", records[1].Kind)
	assert.Equal(t, "x", records[2].Text)
	assert.Equal(t, "EOF", records[4].Kind)
	assert.Equal(t, 8, records[4].Offset)
}

func TestTokensYAMLSkipInvalid(t *testing.T) {
	out, _, err := execute(t, "@ x", "tokens", "-f", "yaml", "--skip-invalid", "-")
	require.NoError(t, err)

	var records []tokenRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "identifier", records[0].Kind)
	assert.Equal(t, 3, records[0].Column)
}

func TestTokensUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "x", "tokens", "-f", "xml", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestTokensMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "tokens", filepath.Join(t.TempDir(), "missing.java"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading source file")
}

func TestCheckReportsAllErrors(t *testing.T) {
	path := writeSource(t, "int x = 1.;\nString s = \"open\n")
	_, stderr, err := execute(t, "", "check", "-v", path)
	require.Error(t, err)
	assert.Equal(t, "2 lexical error(s)", err.Error())
	assert.Contains(t, stderr, path+`:1:9: malformed number "1."`)
	assert.Contains(t, stderr, path+`:2:12: unterminated string "\"open"`)
	assert.Contains(t, stderr, "[lex] "+path+": ")
}

func TestCheckClean(t *testing.T) {
	path := writeSource(t, "class A { void f() { return; } }")
	out, _, err := execute(t, "", "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 file(s)\n", out)
}
