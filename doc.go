// Package disposition parses, validates, and serializes the value of the
// Content-disposition header field used in MIME messages (RFC 2183) and HTTP
// responses, including the "name" parameter extension defined for
// multipart/form-data (RFC 7578).
//
// The library turns an untrusted header value into a structured, validated
// ContentDisposition and turns a ContentDisposition back into a canonical
// string. Parsing is deliberately forgiving: a header with one malformed
// parameter still yields a usable result with the remaining parameters
// intact. The malformed parameter is simply absent from the result, exactly
// as if it had never been sent. Only a missing or empty disposition type
// aborts the parse.
//
// The filename parameter gets special treatment because callers commonly use
// it as a suggested name when saving a file to disk. The Filename type
// rejects anything that could escape the intended directory or smuggle
// control bytes into a terminal: path separators, ".." sequences, absolute
// paths, control characters, and non-ASCII bytes all fail validation. The
// form-data "name" parameter is deliberately left as a plain string since it
// names a form field, not a file.
//
// Values are immutable once built. To derive a changed value, use Modify()
// with one or more Modifier functions:
//
//	cd := disposition.New(disposition.Attachment,
//		disposition.SetFilename(disposition.MustFilename("report.pdf")))
//	cd = disposition.Modify(cd, disposition.SetSize(disposition.MustSize(1024)))
//
// Serialization is deterministic. Well-known parameters are emitted in the
// order RFC 2183 declares them, extension parameters follow sorted by name,
// and quoting is normalized, so the same value always renders to the same
// bytes. Parsing a value's own serialization yields the value back.
//
// This package does not interpret media types, does not decode RFC 2047
// encoded-words or RFC 2231 extended parameters (filename*), and does not
// perform any file I/O.
package disposition
