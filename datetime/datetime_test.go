package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-disposition/datetime"
)

func TestParse(t *testing.T) {
	t.Parallel()

	// strict RFC 5322
	d, err := datetime.Parse([]byte("Wed, 12 Feb 1997 16:29:51 -0500"))
	require.NoError(t, err)
	assert.Equal(t, 1997, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 12, d.Day())
	assert.Equal(t, 16, d.Hour())
	_, off := d.Zone()
	assert.Equal(t, -5*3600, off)

	// lenient fallback handles shapes RFC 5322 does not
	d, err = datetime.ParseString("2019-07-20 15:04:05")
	require.NoError(t, err)
	assert.Equal(t, 2019, d.Year())
	assert.Equal(t, time.July, d.Month())

	// the Unix-date-with-early-year shape seen in the wild
	d, err = datetime.ParseString("Mon Jan 02 15:04:05 2006 MST")
	require.NoError(t, err)
	assert.Equal(t, 2006, d.Year())

	_, err = datetime.ParseString("definitely not a date")
	assert.Error(t, err)

	_, err = datetime.ParseString("")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	d := time.Date(1997, time.February, 12, 16, 29, 51, 0, time.FixedZone("", -5*3600))
	assert.Equal(t, []byte("Wed, 12 Feb 1997 16:29:51 -0500"), datetime.Format(d))
	assert.Equal(t, "Wed, 12 Feb 1997 16:29:51 -0500", datetime.FormatString(d))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	d := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)

	got, err := datetime.Parse(datetime.Format(d))
	require.NoError(t, err)
	assert.True(t, got.Equal(d))
}
