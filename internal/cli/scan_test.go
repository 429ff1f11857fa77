package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sigcmp/internal/testutil"
)

func TestScan_Summary(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "scan", referenceLog)
	require.NoError(t, err)
	assert.Equal(t, "5 lines, 3 signals, 2 skipped\n", out)
}

func TestScan_Verbose(t *testing.T) {
	isolate(t)
	out, errOut, err := execute(t, "scan", referenceLog, "--verbose")
	require.NoError(t, err)
	assertGolden(t, "scan_verbose", out)
	assert.Contains(t, errOut, "scan finished")
}

func TestScan_JSON(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "scan", captureLog, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status  string     `json:"status"`
		Data    ScanResult `json:"data"`
		TraceID string     `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test-run-default", resp.TraceID)
	assert.Equal(t, captureLog, resp.Data.File)
	assert.Equal(t, 5, resp.Data.Lines)
	assert.Equal(t, 4, resp.Data.Signals)
	assert.Equal(t, 1, resp.Data.Skipped)
	require.Len(t, resp.Data.Records, 4)
	assert.Equal(t, ScanRecord{Line: 3, Direction: "<", Time: "1.050", Name: "Engine.Ack", Payload: "Engine.Ack,[SIGNUM],'ok'"}, resp.Data.Records[1])
}

func TestScan_EmptyFile(t *testing.T) {
	isolate(t)
	path := testutil.WriteLog(t, t.TempDir(), "empty.log")

	out, _, err := execute(t, "scan", path)
	require.NoError(t, err)
	assert.Equal(t, "0 lines, 0 signals, 0 skipped\n", out)
}

func TestScan_ByteOrderMark(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bom.log")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf> 0.5,car.start,1,'True'\n"), 0644))

	out, _, err := execute(t, "scan", path)
	require.NoError(t, err)
	assert.Equal(t, "1 line, 1 signal, 0 skipped\n", out)
}

func TestScan_MissingFile(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "scan", filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "log file not found")
}

func TestScan_ArgumentCount(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "scan")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestScanLines(t *testing.T) {
	result := scanLines("capture.log", testutil.CaptureLog)

	assert.Equal(t, len(testutil.CaptureLog), result.Lines)
	assert.Equal(t, 3, result.Signals)
	assert.Equal(t, len(testutil.CaptureLog)-3, result.Skipped)
	assert.Equal(t, []int{2, 3, 7}, []int{result.Records[0].Line, result.Records[1].Line, result.Records[2].Line})
	assert.Equal(t, "8 lines, 3 signals, 5 skipped", result.String())
}
