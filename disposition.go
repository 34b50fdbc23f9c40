package disposition

import (
	"time"

	"github.com/zostay/go-disposition/internal/ascii"
	"github.com/zostay/go-disposition/param"
)

// Type is a disposition type token, such as "inline" or "attachment". Types
// are case-insensitive, which is handled by lowercasing at construction
// rather than at each comparison: create a Type via NewType() or use one of
// the constants and equality just works.
type Type string

// These are the disposition types defined by RFC 2183 and RFC 7578. Any
// other non-empty token is a valid extension type.
const (
	// Inline indicates the content is meant to be displayed as part of the
	// message.
	Inline Type = "inline"

	// Attachment indicates the content is separate from the message, to be
	// saved or displayed only on request.
	Attachment Type = "attachment"

	// FormData indicates a multipart/form-data body part carrying a form
	// field value.
	FormData Type = "form-data"
)

// NewType creates a Type from a raw token, lowercasing any ASCII uppercase
// letters. Any token becomes a valid Type; unrecognized tokens are extension
// types.
func NewType(token string) Type {
	return Type(ascii.LowerString(token))
}

// String returns the type as a string.
func (t Type) String() string {
	return string(t)
}

// ContentDisposition represents a parsed Content-disposition header field
// value: a disposition type plus its parameters. A ContentDisposition object
// is immutable: you cannot change it in place. However, a Modify() function
// is provided to perform transformation of a ContentDisposition into a new
// ContentDisposition.
type ContentDisposition struct {
	t      Type
	params Parameters
}

// New creates a new ContentDisposition with the given type and applies the
// given modifications (if any).
func New(t Type, changes ...Modifier) *ContentDisposition {
	cd := &ContentDisposition{t: t}
	for _, change := range changes {
		change(cd)
	}
	return cd
}

// Modifier is a modification to apply to a ContentDisposition when calling
// the New() or Modify() functions.
type Modifier func(*ContentDisposition)

// ChangeType is a Modifier that replaces the disposition type.
func ChangeType(t Type) Modifier {
	return func(cd *ContentDisposition) {
		cd.t = t
	}
}

// SetFilename is a Modifier that sets the filename parameter.
func SetFilename(f Filename) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.filename, cd.params.hasFilename = f, true
	}
}

// SetCreationDate is a Modifier that sets the creation-date parameter.
func SetCreationDate(t time.Time) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.creationDate = t
	}
}

// SetModificationDate is a Modifier that sets the modification-date
// parameter.
func SetModificationDate(t time.Time) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.modificationDate = t
	}
}

// SetReadDate is a Modifier that sets the read-date parameter.
func SetReadDate(t time.Time) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.readDate = t
	}
}

// SetSize is a Modifier that sets the size parameter.
func SetSize(s Size) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.size, cd.params.hasSize = s, true
	}
}

// SetFormName is a Modifier that sets the form-data name parameter.
func SetFormName(name string) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.formName, cd.params.hasFormName = name, true
	}
}

// Set is a Modifier that sets a parameter with the given name from a raw
// string value. A well-known name is routed through the same validation the
// parser applies, so the typed/extension partition always holds; if the
// value fails validation, the parameter is cleared instead, matching the
// parser's drop policy. Use the typed Set* modifiers when you want a
// validation failure surfaced rather than absorbed.
func Set(n param.Name, value string) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.set(n, value)
	}
}

// Delete is a Modifier that removes the parameter with the given name,
// whether typed or extension.
func Delete(n param.Name) Modifier {
	return func(cd *ContentDisposition) {
		cd.params.unset(n)
	}
}

// Modify clones a ContentDisposition, applies the given modifications (if
// any) and returns the new ContentDisposition. You can pass multiple changes
// to this function:
//
//	cd, _ := disposition.Parse(`attachment; filename="a.txt"`)
//	ncd := disposition.Modify(cd,
//		disposition.ChangeType(disposition.Inline),
//		disposition.Delete(param.Filename))
func Modify(cd *ContentDisposition, changes ...Modifier) *ContentDisposition {
	copy := cd.Clone()
	for _, change := range changes {
		change(copy)
	}
	return copy
}

// Type returns the disposition type.
func (cd *ContentDisposition) Type() Type {
	return cd.t
}

// Parameters returns the parameters of the header value.
func (cd *ContentDisposition) Parameters() *Parameters {
	return &cd.params
}

// Filename returns the filename parameter and whether it is present.
func (cd *ContentDisposition) Filename() (Filename, bool) {
	return cd.params.Filename()
}

// Size returns the size parameter and whether it is present.
func (cd *ContentDisposition) Size() (Size, bool) {
	return cd.params.Size()
}

// FormName returns the form-data name parameter and whether it is present.
func (cd *ContentDisposition) FormName() (string, bool) {
	return cd.params.FormName()
}

// Clone returns a deep copy of the ContentDisposition.
func (cd *ContentDisposition) Clone() *ContentDisposition {
	return &ContentDisposition{
		t:      cd.t,
		params: cd.params.clone(),
	}
}

// Equal compares two ContentDisposition values by value: the types must
// match and every parameter must be present in both with equal values.
func (cd *ContentDisposition) Equal(o *ContentDisposition) bool {
	return cd.t == o.t && cd.params.equal(&o.params)
}
