// Package filtration reads filtrations from and writes barcodes to textual
// resources.
//
// Filtration format, a whitespace-separated token stream of records:
//
//	value dim v0 v1 … vdim
//
// Line breaks carry no meaning; writers emit one record per line. Values are
// parsed at single precision. Text from '#' to the end of a line is a
// comment. A record cut short by the end of input is ignored; any token that
// does not parse fails with ErrMalformedRecord naming its record and line.
//
// Barcode formats:
//
//	FormatText - "dim start end" per line, "inf" for an unbounded end.
//	FormatYAML - a YAML sequence of {dim, start, end}, ".inf" when unbounded.
package filtration
