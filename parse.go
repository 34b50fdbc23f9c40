package disposition

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/zostay/go-disposition/param"
)

// ErrEmptyDispositionType is returned by Parse and ParseBytes when the
// disposition type token before the first ";" is empty or missing. This is
// the only structural failure: everything after the type is parsed
// best-effort.
var ErrEmptyDispositionType = errors.New("empty disposition type")

// Parse is the same as ParseBytes, but accepts a string. The grammar is
// ASCII-only, so a UTF-8 string passes through unchanged.
func Parse(value string) (*ContentDisposition, error) {
	return ParseBytes([]byte(value))
}

// ParseBytes parses a Content-disposition header field body, everything
// after the "Content-Disposition:" name and colon, into a
// ContentDisposition.
//
// Parsing is liberal in what it accepts. The only fatal condition is a
// missing disposition type, reported as ErrEmptyDispositionType. Individual
// parameters that are malformed or fail validation, a filename with a path
// separator in it, a size that is not a number, a date that will not parse,
// are dropped from the result rather than failing the parse, so one bad
// parameter does not cost the caller the rest of the header. A dropped
// parameter is indistinguishable from one that was never sent.
//
// When the same parameter name appears more than once, the last occurrence
// wins.
func ParseBytes(value []byte) (*ContentDisposition, error) {
	body := bytes.TrimSpace(value)

	tok := body
	var rest []byte
	hasParams := false
	if ix := bytes.IndexByte(body, ';'); ix >= 0 {
		tok = bytes.TrimSpace(body[:ix])
		rest = body[ix+1:]
		hasParams = true
	}

	if len(tok) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyDispositionType, string(value))
	}

	cd := &ContentDisposition{t: NewType(string(tok))}
	if !hasParams {
		return cd, nil
	}

	for n, v := range splitParams(rest) {
		cd.params.set(n, v)
	}

	return cd, nil
}

// splitParams tokenizes the parameter section of a header value into a raw
// map of normalized name to unquoted value. Pairs with no "=", an empty
// name, or an empty value are skipped. A repeated name keeps its last value.
func splitParams(section []byte) map[param.Name]string {
	raw := map[param.Name]string{}
	for _, pair := range bytes.Split(section, []byte{';'}) {
		eq := bytes.IndexByte(pair, '=')
		if eq < 0 {
			continue
		}

		key := bytes.TrimSpace(pair[:eq])
		if len(key) == 0 {
			continue
		}

		val := bytes.TrimSpace(pair[eq+1:])
		if len(val) == 0 {
			continue
		}

		raw[param.Normalize(string(key))] = unquote(val)
	}
	return raw
}

// unquote strips one layer of double quotes from a parameter value, if
// present, and collapses the quoted-string escape `\"` to `"`. Only the
// quote escape is recognized: a backslash followed by anything else passes
// through untouched. An unquoted value is returned verbatim.
func unquote(val []byte) string {
	if len(val) < 2 || val[0] != '"' || val[len(val)-1] != '"' {
		return string(val)
	}

	val = val[1 : len(val)-1]
	if !bytes.Contains(val, []byte(`\"`)) {
		return string(val)
	}

	out := make([]byte, 0, len(val))
	for i := 0; i < len(val); i++ {
		if val[i] == '\\' && i+1 < len(val) && val[i+1] == '"' {
			out = append(out, '"')
			i++
			continue
		}
		out = append(out, val[i])
	}
	return string(out)
}
