package disposition

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by NewSize and ParseSize when validation fails.
var (
	// ErrSizeInvalidFormat is returned by ParseSize when the text is not a
	// decimal integer or does not fit in an int64.
	ErrSizeInvalidFormat = errors.New("size is not a valid decimal integer")

	// ErrSizeNegative is returned when the size is negative.
	ErrSizeNegative = errors.New("size is negative")
)

// Size is a validated size parameter value, an approximate count of octets in
// the file the header describes. A Size is guaranteed non-negative.
//
// The zero Size is a valid size of zero octets.
type Size struct {
	octets int64
}

// NewSize returns the given octet count as a Size. It returns ErrSizeNegative
// if the count is negative.
func NewSize(octets int64) (Size, error) {
	if octets < 0 {
		return Size{}, fmt.Errorf("%w: %d", ErrSizeNegative, octets)
	}
	return Size{octets}, nil
}

// ParseSize parses decimal ASCII text as a Size. It returns
// ErrSizeInvalidFormat if the text is not an integer or overflows, and
// ErrSizeNegative if it parses to a negative value.
func ParseSize(text string) (Size, error) {
	octets, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrSizeInvalidFormat, text)
	}
	return NewSize(octets)
}

// ParseSizeBytes is the same as ParseSize, but accepts bytes.
func ParseSizeBytes(text []byte) (Size, error) {
	return ParseSize(string(text))
}

// MustSize is the same as NewSize, but panics if the count is negative. It is
// intended for counts known safe at compile time.
func MustSize(octets int64) Size {
	s, err := NewSize(octets)
	if err != nil {
		panic(err)
	}
	return s
}

// Int64 returns the size as an octet count.
func (s Size) Int64() int64 {
	return s.octets
}

// Compare returns -1, 0, or 1 as s is smaller than, equal to, or larger than
// o.
func (s Size) Compare(o Size) int {
	switch {
	case s.octets < o.octets:
		return -1
	case s.octets > o.octets:
		return 1
	}
	return 0
}

// Less returns true if s is smaller than o.
func (s Size) Less(o Size) bool {
	return s.octets < o.octets
}

// String returns the size as a bare decimal token, which is also how it is
// serialized into a header value.
func (s Size) String() string {
	return strconv.FormatInt(s.octets, 10)
}
