// Package param provides the case-insensitive parameter name type used to key
// Content-disposition header parameters. Parameter names in RFC 2045 grammar
// are case-insensitive tokens, so the Name type normalizes to lowercase at
// construction time and all equality and map lookup falls out of that single
// normalization rather than being re-applied at each comparison.
package param
