package param

import (
	"github.com/zostay/go-disposition/internal/ascii"
)

// Name is a case-insensitive parameter name. A Name must be created via
// Normalize() or taken from one of the constants in this package. Two Names
// constructed that way compare equal whenever the original tokens differ only
// in ASCII case.
type Name string

// These are the well-known parameter names defined for the
// Content-disposition header by RFC 2183, plus the "name" parameter added for
// multipart/form-data by RFC 7578. Any other Name is an extension parameter.
const (
	Filename         Name = "filename"
	CreationDate     Name = "creation-date"
	ModificationDate Name = "modification-date"
	ReadDate         Name = "read-date"
	Size             Name = "size"
	FormName         Name = "name"
)

// Normalize creates a Name from a raw parameter name token, lowercasing any
// ASCII uppercase letters it contains.
func Normalize(token string) Name {
	return Name(ascii.LowerString(token))
}

// String returns the normalized name as a string.
func (n Name) String() string {
	return string(n)
}

// Known returns true if the name is one of the well-known RFC 2183/7578
// parameter names rather than an extension parameter.
func (n Name) Known() bool {
	switch n {
	case Filename, CreationDate, ModificationDate, ReadDate, Size, FormName:
		return true
	}
	return false
}

// Map holds extension parameters keyed by normalized Name.
type Map map[Name]string

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	copy := make(Map, len(m))
	for k, v := range m {
		copy[k] = v
	}
	return copy
}
