package disposition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-disposition"
	"github.com/zostay/go-disposition/param"
)

func TestNewType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, disposition.Attachment, disposition.NewType("Attachment"))
	assert.Equal(t, disposition.FormData, disposition.NewType("FORM-DATA"))
	assert.Equal(t, disposition.Type("x-thing"), disposition.NewType("X-Thing"))
	assert.Equal(t, "inline", disposition.Inline.String())
}

func TestModify(t *testing.T) {
	t.Parallel()

	cd := disposition.New(disposition.Attachment,
		disposition.SetFilename(disposition.MustFilename("a.txt")))

	ncd := disposition.Modify(cd,
		disposition.ChangeType(disposition.Inline),
		disposition.SetSize(disposition.MustSize(99)))

	// the original is untouched
	assert.Equal(t, disposition.Attachment, cd.Type())
	_, found := cd.Size()
	assert.False(t, found)

	assert.Equal(t, disposition.Inline, ncd.Type())

	s, found := ncd.Size()
	assert.True(t, found)
	assert.Equal(t, int64(99), s.Int64())

	f, found := ncd.Filename()
	assert.True(t, found)
	assert.Equal(t, "a.txt", f.String())
}

func TestModify_delete(t *testing.T) {
	t.Parallel()

	when := time.Date(2020, time.May, 4, 8, 0, 0, 0, time.UTC)
	cd := disposition.New(disposition.Attachment,
		disposition.SetFilename(disposition.MustFilename("a.txt")),
		disposition.SetCreationDate(when),
		disposition.SetReadDate(when),
		disposition.Set("x-tag", "keep"),
		disposition.Set("x-drop", "bye"))

	ncd := disposition.Modify(cd,
		disposition.Delete(param.Filename),
		disposition.Delete(param.ReadDate),
		disposition.Delete(param.Name("x-drop")))

	_, found := ncd.Filename()
	assert.False(t, found)
	_, found = ncd.Parameters().ReadDate()
	assert.False(t, found)

	_, found = ncd.Parameters().CreationDate()
	assert.True(t, found)
	assert.Equal(t, "keep", ncd.Parameters().Extension("x-tag"))
	assert.Empty(t, ncd.Parameters().Extension("x-drop"))

	// deleting from the clone did not delete from the original
	assert.Equal(t, "bye", cd.Parameters().Extension("x-drop"))
}

func TestSet_routesKnownNames(t *testing.T) {
	t.Parallel()

	// Set() on a well-known name fills the typed field, never the
	// extension map
	cd := disposition.New(disposition.Attachment,
		disposition.Set(param.Filename, "b.txt"),
		disposition.Set(param.Size, "2048"),
		disposition.Set(param.FormName, "field7"))

	f, found := cd.Filename()
	assert.True(t, found)
	assert.Equal(t, "b.txt", f.String())

	s, found := cd.Size()
	assert.True(t, found)
	assert.Equal(t, int64(2048), s.Int64())

	n, found := cd.FormName()
	assert.True(t, found)
	assert.Equal(t, "field7", n)

	assert.Empty(t, cd.Parameters().Extensions())

	// an invalid value for a typed field clears it, same as the parser
	ncd := disposition.Modify(cd, disposition.Set(param.Filename, "../b.txt"))
	_, found = ncd.Filename()
	assert.False(t, found)

	ncd = disposition.Modify(cd, disposition.Set(param.Size, "not-a-number"))
	_, found = ncd.Size()
	assert.False(t, found)

	// dates route through the date parser
	ncd = disposition.Modify(cd,
		disposition.Set(param.CreationDate, "Wed, 12 Feb 1997 16:29:51 -0500"))
	ct, found := ncd.Parameters().CreationDate()
	assert.True(t, found)
	assert.Equal(t, 1997, ct.Year())
}

func TestContentDisposition_Equal(t *testing.T) {
	t.Parallel()

	a := disposition.New(disposition.Attachment,
		disposition.SetFilename(disposition.MustFilename("a.txt")),
		disposition.Set("x-tag", "v"))
	b := disposition.New(disposition.Attachment,
		disposition.Set("x-tag", "v"),
		disposition.SetFilename(disposition.MustFilename("a.txt")))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	assert.False(t, a.Equal(disposition.Modify(a, disposition.ChangeType(disposition.Inline))))
	assert.False(t, a.Equal(disposition.Modify(a, disposition.Delete(param.Filename))))
	assert.False(t, a.Equal(disposition.Modify(a, disposition.Set("x-tag", "w"))))
	assert.False(t, a.Equal(disposition.Modify(a, disposition.Set("x-more", "z"))))

	// dates compare by instant, not by location
	utc := time.Date(2021, time.March, 1, 17, 0, 0, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*3600))
	x := disposition.New(disposition.Attachment, disposition.SetModificationDate(utc))
	y := disposition.New(disposition.Attachment, disposition.SetModificationDate(est))
	assert.True(t, x.Equal(y))
}

func TestContentDisposition_Clone(t *testing.T) {
	t.Parallel()

	cd := disposition.New(disposition.Attachment,
		disposition.SetFilename(disposition.MustFilename("a.txt")),
		disposition.Set("x-tag", "v"))

	copy := cd.Clone()
	require.NotSame(t, cd, copy)
	assert.True(t, cd.Equal(copy))

	// the extension map is deep-copied
	changed := disposition.Modify(copy, disposition.Set("x-tag", "w"))
	assert.Equal(t, "v", cd.Parameters().Extension("x-tag"))
	assert.Equal(t, "w", changed.Parameters().Extension("x-tag"))
}
