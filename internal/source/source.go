// Package source opens signal log files for comparison.
//
// Inputs are decoded through a BOM sniffer: a UTF-8 byte order mark is
// dropped and UTF-16 input carrying a BOM is decoded to UTF-8, so an editor
// saving a log with a BOM does not hide its first line from the extractor.
// Input without a BOM passes through byte for byte.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File is an open input log.
type File struct {
	path string
	f    *os.File
	r    io.Reader
}

// Open opens the log at path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path, err)
		}
		return nil, unreadable(path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, unreadable(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, unreadable(path, fmt.Errorf("is a directory"))
	}

	return &File{
		path: path,
		f:    f,
		r:    transform.NewReader(f, unicode.BOMOverride(transform.Nop)),
	}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Read reads decoded bytes. Read failures are reported as unreadable input.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err != nil && err != io.EOF {
		return n, unreadable(f.path, err)
	}
	return n, err
}

// Close releases the file.
func (f *File) Close() error {
	return f.f.Close()
}

// WithPair opens both logs, calls fn, and closes whatever was opened on every
// return path. If the second log cannot be opened the first is still closed.
func WithPair(leftPath, rightPath string, fn func(left, right *File) error) error {
	left, err := Open(leftPath)
	if err != nil {
		return err
	}
	defer left.Close()

	right, err := Open(rightPath)
	if err != nil {
		return err
	}
	defer right.Close()

	return fn(left, right)
}

// With opens one log, calls fn and closes it.
func With(path string, fn func(f *File) error) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}
