package disposition

import (
	"time"

	"github.com/zostay/go-disposition/datetime"
	"github.com/zostay/go-disposition/param"
)

// Parameters holds the parameters of a Content-disposition header value. The
// well-known RFC 2183 parameters (filename, the three dates, size) and the
// RFC 7578 form-data name are stored as typed fields; every other parameter
// lands in an extension map keyed by its normalized name. A name is never
// present both as a typed field and in the extension map.
//
// Parameters cannot be changed through this type. Use the Modifier functions
// with New() or Modify() on the enclosing ContentDisposition.
type Parameters struct {
	filename    Filename
	hasFilename bool

	creationDate     time.Time
	modificationDate time.Time
	readDate         time.Time

	size    Size
	hasSize bool

	formName    string
	hasFormName bool

	ext param.Map
}

// Filename returns the filename parameter and whether it is present.
func (p *Parameters) Filename() (Filename, bool) {
	return p.filename, p.hasFilename
}

// CreationDate returns the creation-date parameter and whether it is present.
func (p *Parameters) CreationDate() (time.Time, bool) {
	return p.creationDate, !p.creationDate.IsZero()
}

// ModificationDate returns the modification-date parameter and whether it is
// present.
func (p *Parameters) ModificationDate() (time.Time, bool) {
	return p.modificationDate, !p.modificationDate.IsZero()
}

// ReadDate returns the read-date parameter and whether it is present.
func (p *Parameters) ReadDate() (time.Time, bool) {
	return p.readDate, !p.readDate.IsZero()
}

// Size returns the size parameter and whether it is present.
func (p *Parameters) Size() (Size, bool) {
	return p.size, p.hasSize
}

// FormName returns the form-data name parameter and whether it is present.
// Unlike filename, the name parameter identifies a form field rather than a
// file, so it is a plain unvalidated string.
func (p *Parameters) FormName() (string, bool) {
	return p.formName, p.hasFormName
}

// Extension returns the value of the extension parameter with the given name,
// or the empty string if it is not set.
func (p *Parameters) Extension(n param.Name) string {
	return p.ext[n]
}

// Extensions returns the extension parameters as a map. Do not modify this
// map. The behavior if you do is not defined and may change in the future. If
// you need to modify it, make a copy first.
func (p *Parameters) Extensions() param.Map {
	return p.ext
}

// Len returns the total number of parameters present, typed and extension.
func (p *Parameters) Len() int {
	n := len(p.ext)
	if p.hasFilename {
		n++
	}
	if !p.creationDate.IsZero() {
		n++
	}
	if !p.modificationDate.IsZero() {
		n++
	}
	if !p.readDate.IsZero() {
		n++
	}
	if p.hasSize {
		n++
	}
	if p.hasFormName {
		n++
	}
	return n
}

// clone returns a deep copy of the parameters.
func (p *Parameters) clone() Parameters {
	copy := *p
	if p.ext != nil {
		copy.ext = p.ext.Clone()
	}
	return copy
}

// equal compares two parameter sets by value. Dates compare with
// time.Time.Equal, so the same instant in different locations is still equal.
func (p *Parameters) equal(o *Parameters) bool {
	if p.hasFilename != o.hasFilename || p.filename != o.filename {
		return false
	}
	if !p.creationDate.Equal(o.creationDate) ||
		!p.modificationDate.Equal(o.modificationDate) ||
		!p.readDate.Equal(o.readDate) {
		return false
	}
	if p.hasSize != o.hasSize || p.size != o.size {
		return false
	}
	if p.hasFormName != o.hasFormName || p.formName != o.formName {
		return false
	}
	if len(p.ext) != len(o.ext) {
		return false
	}
	for k, v := range p.ext {
		if ov, found := o.ext[k]; !found || ov != v {
			return false
		}
	}
	return true
}

// set routes a raw parameter value to its destination, applying the same
// validation the parser applies. A well-known name goes through its
// validator; a value the validator rejects clears the field rather than
// setting it, matching the parser's policy of dropping bad parameters. Any
// other name is stored verbatim in the extension map.
func (p *Parameters) set(n param.Name, value string) {
	switch n {
	case param.Filename:
		if f, err := NewFilename(value); err == nil {
			p.filename, p.hasFilename = f, true
		} else {
			p.filename, p.hasFilename = Filename{}, false
		}
	case param.CreationDate:
		p.creationDate = parseDateOrZero(value)
	case param.ModificationDate:
		p.modificationDate = parseDateOrZero(value)
	case param.ReadDate:
		p.readDate = parseDateOrZero(value)
	case param.Size:
		if s, err := ParseSize(value); err == nil {
			p.size, p.hasSize = s, true
		} else {
			p.size, p.hasSize = Size{}, false
		}
	case param.FormName:
		p.formName, p.hasFormName = value, true
	default:
		if p.ext == nil {
			p.ext = param.Map{}
		}
		p.ext[n] = value
	}
}

// unset removes the parameter with the given name, typed or extension.
func (p *Parameters) unset(n param.Name) {
	switch n {
	case param.Filename:
		p.filename, p.hasFilename = Filename{}, false
	case param.CreationDate:
		p.creationDate = time.Time{}
	case param.ModificationDate:
		p.modificationDate = time.Time{}
	case param.ReadDate:
		p.readDate = time.Time{}
	case param.Size:
		p.size, p.hasSize = Size{}, false
	case param.FormName:
		p.formName, p.hasFormName = "", false
	default:
		delete(p.ext, n)
	}
}

// parseDateOrZero parses a date parameter value, returning the zero time when
// the value cannot be parsed. The zero time marks the field absent.
func parseDateOrZero(value string) time.Time {
	t, err := datetime.ParseString(value)
	if err != nil {
		return time.Time{}
	}
	return t
}
