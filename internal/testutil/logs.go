// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteLog writes lines, newline terminated, to dir/name and returns the path.
func WriteLog(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating log dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing log %s: %v", path, err)
	}
	return path
}

// CaptureLog is a short reference capture used across tests.
var CaptureLog = []string{
	"# capture 2018-03-01",
	"> 0.100,car.start,1,'True'",
	"< 0.250,phone.call,[SIGNUM],'active'",
	"State = {",
	"phone.call = active",
	"}",
	"> 0.300,car.stop,4,'True'",
	"",
}
