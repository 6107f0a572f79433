// Package frag decodes, combines and applies binary deltas.
//
// A delta is a packed sequence of replace records, each a 12 byte big-endian
// header (start, end, len) followed by len bytes of replacement data. Decode
// turns one delta into a [List] of [Fragment]s which borrow their data from
// the delta blob. Combine merges two lists applied in sequence into one
// equivalent list without copying replacement bytes, so a chain of deltas can
// be reduced to a single list and applied once with [Apply].
//
// # Lifetimes
//
// Fragments are views into the blobs they were decoded from. A combined list
// may reference bytes from every blob that contributed to it. Blobs must not
// be modified until the list has been applied.
//
// # Related Packages
//
//   - github.com/signadot/mpatch/fold - divide and conquer reduction of delta chains
//   - github.com/signadot/mpatch - reconstruction entry points
package frag
