package frag

import "fmt"

// check validates f against the end of the previous fragment and the base
// length.
func check(i int, f *Fragment, last, baseLen int) error {
	switch {
	case f.Start < last:
		return fmt.Errorf("%w: fragment %d %s starts before previous end %d", ErrInvalidPatch, i, f, last)
	case f.End < f.Start:
		return fmt.Errorf("%w: fragment %d %s ends before it starts", ErrInvalidPatch, i, f)
	case f.End > baseLen:
		return fmt.Errorf("%w: fragment %d %s ends past base length %d", ErrInvalidPatch, i, f, baseLen)
	}
	return nil
}

// CalcSize returns the length of the document produced by applying l to a
// base of length baseLen.
func CalcSize(baseLen int, l *List) (int, error) {
	size, last := 0, 0
	for i, f := range l.Fragments() {
		if err := check(i, &f, last, baseLen); err != nil {
			return 0, err
		}
		size += f.Start - last + f.Len()
		last = f.End
	}
	return size + baseLen - last, nil
}

// Apply applies l to base and returns the new document. l is validated
// before anything is allocated.
func Apply(base []byte, l *List) ([]byte, error) {
	size, err := CalcSize(len(base), l)
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	p, last := 0, 0
	for _, f := range l.Fragments() {
		p += copy(out[p:], base[last:f.Start])
		p += copy(out[p:], f.Data)
		last = f.End
	}
	copy(out[p:], base[last:])
	return out, nil
}

// PatchedSize returns the length of the document produced by applying the
// single delta blob to a base of length baseLen. It reads the headers in
// place without building a List and agrees with CalcSize(baseLen,
// Decode(blob)).
func PatchedSize(baseLen int, blob []byte) (int, error) {
	size, last, pos := 0, 0, 0
	for i := 0; ; i++ {
		h, ok, err := readHeader(blob, pos)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		f := Fragment{Start: h.start, End: h.end}
		if err := check(i, &f, last, baseLen); err != nil {
			return 0, err
		}
		size += h.start - last + h.n
		last = h.end
		pos = h.next
	}
	return size + baseLen - last, nil
}
