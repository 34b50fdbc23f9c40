package disposition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-disposition/internal/ascii"
)

// Errors returned by NewFilename when validation fails.
var (
	// ErrFilenameEmpty is returned when the filename is the empty string.
	ErrFilenameEmpty = errors.New("filename is empty")

	// ErrFilenameControl is returned when the filename contains an ASCII
	// control character (0x00-0x1F or DEL). The error message names the
	// offending byte.
	ErrFilenameControl = errors.New("filename contains a control character")

	// ErrFilenameNotASCII is returned when the filename contains a byte
	// outside the ASCII range.
	ErrFilenameNotASCII = errors.New("filename contains a non-ASCII byte")

	// ErrFilenamePathTraversal is returned when the filename contains a ".."
	// sequence.
	ErrFilenamePathTraversal = errors.New(`filename contains ".."`)

	// ErrFilenameAbsolutePath is returned when the filename starts with a
	// path separator.
	ErrFilenameAbsolutePath = errors.New("filename is an absolute path")

	// ErrFilenamePathSeparator is returned when the filename contains a "/"
	// or "\" anywhere past the first byte.
	ErrFilenamePathSeparator = errors.New("filename contains a path separator")
)

// Filename is a validated filename parameter value. Receivers of a
// Content-disposition header commonly use the filename as the suggested leaf
// name when saving an attachment, so a Filename is guaranteed never to name
// anything outside a single directory: it is non-empty, printable ASCII (with
// space allowed), free of path separators and ".." sequences, and relative.
//
// The zero Filename is not valid; construct one with NewFilename(),
// NewFilenameBytes(), or MustFilename().
type Filename struct {
	name string
}

// NewFilename validates the given string and returns it as a Filename. It
// returns one of the ErrFilename errors if the string is empty, contains
// control or non-ASCII bytes, contains "..", contains a path separator, or
// starts with one.
func NewFilename(name string) (Filename, error) {
	if name == "" {
		return Filename{}, ErrFilenameEmpty
	}

	for i := 0; i < len(name); i++ {
		b := name[i]
		if ascii.IsControl(b) {
			return Filename{}, fmt.Errorf("%w: 0x%02x at offset %d", ErrFilenameControl, b, i)
		}
		if b >= 0x80 {
			return Filename{}, fmt.Errorf("%w: 0x%02x at offset %d", ErrFilenameNotASCII, b, i)
		}
	}

	if strings.Contains(name, "..") {
		return Filename{}, ErrFilenamePathTraversal
	}

	if name[0] == '/' || name[0] == '\\' {
		return Filename{}, ErrFilenameAbsolutePath
	}

	if strings.ContainsAny(name, `/\`) {
		return Filename{}, ErrFilenamePathSeparator
	}

	return Filename{name}, nil
}

// NewFilenameBytes is the same as NewFilename, but accepts bytes.
func NewFilenameBytes(name []byte) (Filename, error) {
	return NewFilename(string(name))
}

// MustFilename is the same as NewFilename, but panics if validation fails. It
// is intended for filenames known safe at compile time, such as literals in
// tests and examples. Never pass untrusted input to this function.
func MustFilename(name string) Filename {
	f, err := NewFilename(name)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the filename as a string.
func (f Filename) String() string {
	return f.name
}

// Bytes returns the filename as a slice of bytes.
func (f Filename) Bytes() []byte {
	return []byte(f.name)
}
