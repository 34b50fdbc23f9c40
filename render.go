package disposition

import (
	"sort"
	"strings"

	"github.com/zostay/go-disposition/datetime"
	"github.com/zostay/go-disposition/param"
)

// String returns the canonical serialization of the header value. The output
// is deterministic: the disposition type comes first, the well-known
// parameters follow in the order RFC 2183 declares them (filename,
// creation-date, modification-date, read-date, size), then the form-data
// name, then the extension parameters sorted by name. Every value except
// size is double-quoted with any embedded quote escaped as `\"`; size is a
// bare decimal token. Absent parameters are omitted.
//
// Serializing the result of Parse() gives back a normalized form of the
// original input, not necessarily the original bytes: whitespace, parameter
// order, and quoting style are all canonicalized. Serialization itself is a
// fixed point, though: parsing this string and serializing again reproduces
// it exactly.
func (cd *ContentDisposition) String() string {
	p := &cd.params

	parts := make([]string, 0, p.Len()+1)
	parts = append(parts, string(cd.t))

	if f, found := p.Filename(); found {
		parts = append(parts, renderParam(param.Filename, f.String()))
	}
	if t, found := p.CreationDate(); found {
		parts = append(parts, renderParam(param.CreationDate, datetime.FormatString(t)))
	}
	if t, found := p.ModificationDate(); found {
		parts = append(parts, renderParam(param.ModificationDate, datetime.FormatString(t)))
	}
	if t, found := p.ReadDate(); found {
		parts = append(parts, renderParam(param.ReadDate, datetime.FormatString(t)))
	}
	if s, found := p.Size(); found {
		parts = append(parts, string(param.Size)+"="+s.String())
	}
	if n, found := p.FormName(); found {
		parts = append(parts, renderParam(param.FormName, n))
	}

	if len(p.ext) > 0 {
		names := make([]string, 0, len(p.ext))
		for n := range p.ext {
			names = append(names, string(n))
		}
		sort.Strings(names)

		for _, n := range names {
			parts = append(parts, renderParam(param.Name(n), p.ext[param.Name(n)]))
		}
	}

	return strings.Join(parts, "; ")
}

// Bytes returns the canonical serialization of the header value as a slice
// of bytes.
func (cd *ContentDisposition) Bytes() []byte {
	return []byte(cd.String())
}

// renderParam renders one key=value pair with the value quoted.
func renderParam(n param.Name, value string) string {
	return string(n) + "=" + quote(value)
}

// quote wraps a value in double quotes, escaping embedded quotes as `\"`.
// This is the inverse of unquote for every value this library produces.
func quote(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	b.WriteByte('"')
	return b.String()
}
