package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes a scenario comparing one signal against a changed
// copy of itself; reports is the expected mismatch count.
func writeScenario(t *testing.T, dir, name string, reports int) string {
	t.Helper()
	content := fmt.Sprintf(`name: %s
description: "one payload change"
left:
  name: file1.log
  lines:
    - "> 1.0,Foo,1,'a'"
right:
  name: file2.log
  lines:
    - "> 1.0,Foo,1,'b'"
expect:
  reports: %d
`, name, reports)
	path := filepath.Join(dir, name+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const changedOutput = "Signal 1\nfile1.log:1: > 1.0,Foo,1,'a'\nfile2.log:1: > 1.0,Foo,1,'b'\n"

func TestTestCommandMissingArgs(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandEmptyScenariosDir(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestTestCommandEmptyScenariosDirJSON(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "test", t.TempDir(), "--format", "json")
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "ok", response.Status)
}

func TestTestCommandPassing(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeScenario(t, dir, "changed", 1)

	out, _, err := execute(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ changed")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.Contains(t, out, "All scenarios passed")
}

func TestTestCommandFailing(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeScenario(t, dir, "changed", 0)

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ changed")
	assert.Contains(t, out, "expect.reports: expected 0, got 1")
	assert.Contains(t, out, "Test Summary: 0 passed, 1 failed, 1 total")
}

func TestTestCommandInvalidScenario(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: broken\n"), 0644))

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommandGolden(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeScenario(t, dir, "changed", 1)
	goldenPath := filepath.Join(dir, "golden", "changed.golden")

	out, _, err := execute(t, "test", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ changed (golden updated)")

	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, changedOutput, string(data))

	_, _, err = execute(t, "test", dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(goldenPath, []byte("stale\n"), 0644))
	out, _, err = execute(t, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "output does not match golden file")
}

func TestTestCommandUpdateKeepsExpectationFailures(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeScenario(t, dir, "bad", 0)

	out, _, err := execute(t, "test", dir, "--update")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ bad")
	assert.Contains(t, out, "expect.reports: expected 0, got 1")
	assert.NotContains(t, out, "golden updated")
	assert.NotContains(t, out, "All scenarios passed")
}

func TestTestCommandFilter(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeScenario(t, dir, "changed_one", 1)
	writeScenario(t, dir, "other", 0)

	out, _, err := execute(t, "test", dir, "--filter", "changed_*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")
	assert.NotContains(t, out, "other")
}

func TestTestCommandJSON(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeScenario(t, dir, "changed", 1)
	writeScenario(t, dir, "wrong", 0)

	out, _, err := execute(t, "test", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.False(t, strings.Contains(out, "✓"), "JSON output must not carry text lines")

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeTestFailed, resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
	assert.Equal(t, 2, resp.Data.Total)
}

func TestTestCommandRepoScenarios(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "test", filepath.Join("..", "harness", "testdata", "scenarios"))
	require.NoError(t, err)
	assert.Contains(t, out, "All scenarios passed")
}

func TestTestHelpText(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "test", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "scenarios")
	assert.Contains(t, out, "--update")
	assert.Contains(t, out, "--filter")
	assert.Contains(t, out, "SCENARIOS_DIR")
}

func TestFindScenarioFiles(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "test1.yaml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "test2.yml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ignore.txt"), []byte(""), 0644))

	files, err := findScenarioFiles(tmpDir, "")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFindScenarioFilesWithFilter(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "deviation-within.yaml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "deviation-outside.yaml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ignore-time.yaml"), []byte(""), 0644))

	files, err := findScenarioFiles(tmpDir, "deviation-*")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	for _, f := range files {
		assert.True(t, strings.HasPrefix(filepath.Base(f), "deviation-"), "unexpected file: %s", f)
	}
}

func TestFindScenarioFilesBadFilter(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.yaml"), []byte(""), 0644))

	_, err := findScenarioFiles(tmpDir, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestFindScenarioFilesSubdirectories(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "subdir")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "root.yaml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(subDir, "sub.yaml"), []byte(""), 0644))

	files, err := findScenarioFiles(tmpDir, "")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestGoldenFilePath(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"/path/to/scenario.yaml", "/path/to/golden/scenario.golden"},
		{"/path/to/scenario.yml", "/path/to/golden/scenario.golden"},
		{"scenarios/test.yaml", "scenarios/golden/test.golden"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, goldenFilePath(tc.input))
	}
}
