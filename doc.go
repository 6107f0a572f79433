// Package mpatch reconstructs documents from a base text and a chain of
// binary deltas.
//
// Instead of applying N deltas one after the other, which rebuilds the text
// N times, the deltas are decoded into fragment lists and combined pairwise
// into a single equivalent list which is applied once. See package frag for
// the wire format and the combination algorithm, and package fold for the
// divide and conquer reduction.
//
// # Errors
//
// Structurally broken deltas fail with [ErrMalformedDelta]. Deltas that are
// well formed but do not fit the base (overlapping or out of order
// fragments, ranges past the end of the document) fail with
// [ErrInvalidPatch]. Both indicate corrupt input and are never retried.
//
// # Related Packages
//
//   - github.com/signadot/mpatch/frag - fragments, decode, combine, apply
//   - github.com/signadot/mpatch/fold - chain reduction
//   - github.com/signadot/mpatch/chunk - stored chunk compression
package mpatch
