package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func executeInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init", "--log-file", filepath.Join(t.TempDir(), "pushup.log")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	output, err := executeInit(t, "--host", "http://192.168.1.20:8081", "--platform", "android")
	require.NoError(t, err)

	targetPath := filepath.Join(tempDir, configFileName)
	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &written))
	assert.Equal(t, "http://192.168.1.20:8081", written[hostConfigKey])
	assert.Equal(t, "android", written[platformConfigKey])
	assert.Contains(t, written, "watch")
	assert.Contains(t, written, "log")

	assert.Contains(t, output, "wrote "+configFileName)
	assert.Contains(t, output, "  host: http://192.168.1.20:8081\n")
	assert.Contains(t, output, "  platform: android\n")
	assert.Contains(t, output, "  watch.debounce: ")
	assert.NotContains(t, output, "set host")
}

func TestInitCmd_HintsMissingHost(t *testing.T) {
	chdirTemp(t)

	output, err := executeInit(t, "--host", "")
	require.NoError(t, err)

	assert.Contains(t, output, "set host before running apply or watch")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeInit(t)
	require.Error(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}
