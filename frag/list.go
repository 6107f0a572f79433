package frag

// gather moves fragments from the head of src to dst while they start before
// cut, where cut is a position in the output of src and offset is the net
// length change of the fragments of src consumed so far. A fragment
// straddling cut is split: the part before cut goes to dst, the remainder
// stays at the head of src. It returns the offset after the moved fragments.
//
// A nil dst drops the moved fragments instead.
func gather(dst, src *List, cut, offset int) int {
	for !src.empty() {
		s := src.front()
		if s.Start+offset >= cut {
			break
		}
		postEnd := offset + s.Start + s.Len()
		if postEnd <= cut {
			offset += s.Delta()
			if dst != nil {
				dst.push(*s)
			}
			src.head++
			continue
		}

		// split s at cut
		c := min(cut-offset, s.End)
		n := min(cut-offset-s.Start, s.Len())
		offset += s.Start + n - c
		if dst != nil {
			dst.push(Fragment{
				Start: s.Start,
				End:   c,
				Data:  s.Data[:n:n],
			})
		}
		s.Start = c
		s.Data = s.Data[n:]
		break
	}
	return offset
}

// discard is gather without a destination: the consumed fragments are
// overwritten by a newer patch.
func discard(src *List, cut, offset int) int {
	return gather(nil, src, cut, offset)
}
