package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/sigcmp/internal/config"
	"github.com/roach88/sigcmp/internal/testutil"
)

const (
	referenceLog = "testdata/logs/reference.log"
	captureLog   = "testdata/logs/capture.log"
)

// isolate hides the user's config file and SIGCMP_ environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range config.Keys() {
		t.Setenv(config.EnvPrefix+"_"+strings.ToUpper(key), "")
	}
	return dir
}

// execute runs the root command with args and a fixed run ID.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeWith(t, testutil.NewFixedRunIDGenerator(""), args...)
}

// executeWith runs the root command with args, drawing run IDs from ids.
func executeWith(t *testing.T, ids RunIDGenerator, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	opts := &RootOptions{RunIDs: ids}
	cmd := NewRootCommandWithOptions(opts)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func assertGolden(t *testing.T, name, actual string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(actual))
}
