package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLog(t *testing.T) {
	path := WriteLog(t, t.TempDir(), "sub/a.log", "one", "two")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestWriteLog_Empty(t *testing.T) {
	path := WriteLog(t, t.TempDir(), "empty.log")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
