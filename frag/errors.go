package frag

import "errors"

var (
	// ErrMalformedDelta indicates a delta blob whose records do not end
	// exactly at the end of the blob: a truncated header or data, trailing
	// bytes, or a record with start > end.
	ErrMalformedDelta = errors.New("malformed delta")

	// ErrInvalidPatch indicates a fragment list that is out of order,
	// overlapping, or reaching past the end of the base document.
	ErrInvalidPatch = errors.New("invalid patch")
)
