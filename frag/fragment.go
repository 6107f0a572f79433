package frag

import "fmt"

// Fragment is a single replace operation: the base range [Start, End) is
// replaced by Data. Start and End are offsets in the document as it was
// before the patch holding this fragment is applied.
type Fragment struct {
	Start int
	End   int
	Data  []byte // borrowed from the delta blob
}

// Len is the length of the replacement data.
func (f Fragment) Len() int {
	return len(f.Data)
}

// Delta is the change in document length caused by f.
func (f Fragment) Delta() int {
	return len(f.Data) - (f.End - f.Start)
}

func (f Fragment) String() string {
	return fmt.Sprintf("[%d,%d)+%d", f.Start, f.End, len(f.Data))
}

// List is an ordered run of fragments sorted by Start. The live fragments
// are frags[head:]; fragments before head have been consumed by gather or
// discard.
type List struct {
	frags []Fragment
	head  int
}

// NewList returns an empty list with room for n fragments.
func NewList(n int) *List {
	if n < 1 {
		n = 1
	}
	return &List{frags: make([]Fragment, 0, n)}
}

// ListOf returns a list holding fs. The list takes ownership of fs.
func ListOf(fs ...Fragment) *List {
	return &List{frags: fs}
}

// Len returns the number of live fragments.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.frags) - l.head
}

// Fragments returns the live fragments. The slice aliases the list.
func (l *List) Fragments() []Fragment {
	if l == nil {
		return nil
	}
	return l.frags[l.head:]
}

func (l *List) push(f Fragment) {
	l.frags = append(l.frags, f)
}

func (l *List) front() *Fragment {
	return &l.frags[l.head]
}

func (l *List) empty() bool {
	return l.head == len(l.frags)
}
