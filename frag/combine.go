package frag

// Combine returns the list equivalent to applying older and then newer to
// the same document. Positions in newer refer to the output of older; the
// result refers to the input of older. Both arguments are consumed.
//
// Replacement data is never copied, so the result borrows from every blob
// older and newer were decoded from.
func Combine(older, newer *List) *List {
	if older.Len() == 0 {
		return newer
	}
	if newer.Len() == 0 {
		return older
	}
	// capacity hint only, appends grow past it
	res := NewList(2 * (older.Len() + newer.Len()))
	offset := 0
	for _, b := range newer.Fragments() {
		// older hunks entirely before b survive
		offset = gather(res, older, b.Start, offset)
		// older hunks under b are overwritten
		post := discard(older, b.End, offset)
		res.push(Fragment{
			Start: b.Start - offset,
			End:   b.End - post,
			Data:  b.Data,
		})
		offset = post
	}
	res.frags = append(res.frags, older.Fragments()...)
	older.head = len(older.frags)
	newer.head = len(newer.frags)
	return res
}
