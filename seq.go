package seq

// Seq is a persistent double-ended sequence of values. The zero value is an
// empty sequence, ready to use.
//
// A Seq must not be copied by assignment: use [Seq.Clone], which is O(1) and
// shares all structure. A single *Seq must not be used from multiple
// goroutines concurrently; distinct sequences derived from one another may
// be.
type Seq[A any] struct {
	raw *ref[rawSeq[A]]
}

// New returns an empty sequence.
func New[A any]() *Seq[A] {
	return &Seq[A]{raw: newRef(newRawSeq[A]())}
}

// From returns a sequence of the given values, in order.
func From[A any](values ...A) *Seq[A] {
	s := New[A]()
	for _, value := range values {
		s.raw.value.pushBack(value)
	}
	return s
}

// snapshot returns a shallow working copy of the spine, for the persistent
// operations to mutate and re-wrap.
func (s *Seq[A]) snapshot() rawSeq[A] {
	if s.raw == nil {
		return newRawSeq[A]()
	}
	return s.raw.value.clone()
}

// mut returns the spine for in-place mutation, cloning it first if it is
// shared with another sequence or a live iterator.
func (s *Seq[A]) mut() *rawSeq[A] {
	if s.raw == nil {
		s.raw = newRef(newRawSeq[A]())
	} else if !s.raw.unique() {
		clone := s.raw.value.clone()
		s.raw.release()
		s.raw = newRef(clone)
	}
	return &s.raw.value
}

// Len returns the number of elements in the sequence.
func (s *Seq[A]) Len() int {
	if s.raw == nil {
		return 0
	}
	return s.raw.value.length
}

// IsEmpty reports whether the sequence has no elements.
func (s *Seq[A]) IsEmpty() bool {
	return s.Len() == 0
}

// Clone returns a sequence equal to s, sharing all structure with it, in
// O(1). Either copy may be mutated afterwards without affecting the other.
func (s *Seq[A]) Clone() *Seq[A] {
	if s.raw == nil {
		return &Seq[A]{}
	}
	return &Seq[A]{raw: s.raw.retain()}
}

// PushFront returns a sequence with value prepended. The receiver is
// unchanged.
func (s *Seq[A]) PushFront(value A) *Seq[A] {
	raw := s.snapshot()
	raw.pushFront(value)
	return &Seq[A]{raw: newRef(raw)}
}

// PushBack returns a sequence with value appended. The receiver is unchanged.
func (s *Seq[A]) PushBack(value A) *Seq[A] {
	raw := s.snapshot()
	raw.pushBack(value)
	return &Seq[A]{raw: newRef(raw)}
}

// PopFront returns the first element and a sequence with that element
// removed, leaving the receiver unchanged. It returns false if the sequence
// is empty.
func (s *Seq[A]) PopFront() (A, *Seq[A], bool) {
	raw := s.snapshot()
	value, ok := raw.popFront()
	if !ok {
		raw.dispose()
		return value, nil, false
	}
	return value, &Seq[A]{raw: newRef(raw)}, true
}

// PopBack returns the last element and a sequence with that element removed,
// leaving the receiver unchanged. It returns false if the sequence is empty.
func (s *Seq[A]) PopBack() (A, *Seq[A], bool) {
	raw := s.snapshot()
	value, ok := raw.popBack()
	if !ok {
		raw.dispose()
		return value, nil, false
	}
	return value, &Seq[A]{raw: newRef(raw)}, true
}

// PushFrontMut prepends value in place.
func (s *Seq[A]) PushFrontMut(value A) {
	s.mut().pushFront(value)
}

// PushBackMut appends value in place.
func (s *Seq[A]) PushBackMut(value A) {
	s.mut().pushBack(value)
}

// PopFrontMut removes and returns the first element, or false if the
// sequence is empty.
func (s *Seq[A]) PopFrontMut() (A, bool) {
	if s.Len() == 0 {
		var zero A
		return zero, false
	}
	return s.mut().popFront()
}

// PopBackMut removes and returns the last element, or false if the sequence
// is empty.
func (s *Seq[A]) PopBackMut() (A, bool) {
	if s.Len() == 0 {
		var zero A
		return zero, false
	}
	return s.mut().popBack()
}

// Concat returns the concatenation of s and other. Neither input is changed.
// The cost is proportional to the two middle chunk runs, not the element
// count.
func (s *Seq[A]) Concat(other *Seq[A]) *Seq[A] {
	if other == nil {
		panic(`seq: concat: nil sequence`)
	}
	raw := s.snapshot()
	rhs := other.snapshot()
	raw.concat(&rhs)
	return &Seq[A]{raw: newRef(raw)}
}

// ConcatMut appends other onto s in place. The other sequence is unchanged.
func (s *Seq[A]) ConcatMut(other *Seq[A]) {
	if other == nil {
		panic(`seq: concat: nil sequence`)
	}
	rhs := other.snapshot()
	s.mut().concat(&rhs)
}

// Split returns two sequences covering [0, i) and [i, Len()). The receiver
// is unchanged; both results share structure with it. Split panics unless
// 0 <= i <= Len(); i == Len() yields the whole sequence and an empty one.
func (s *Seq[A]) Split(i int) (*Seq[A], *Seq[A]) {
	if i < 0 || i > s.Len() {
		panic(`seq: split: index out of range`)
	}
	if i == s.Len() {
		return s.Clone(), New[A]()
	}
	left, right := s.raw.value.split(i)
	return &Seq[A]{raw: newRef(left)}, &Seq[A]{raw: newRef(right)}
}

// Iter returns a forward iterator over a snapshot of the sequence. Later
// mutations of s are not observed by the iterator.
func (s *Seq[A]) Iter() *Iterator[A] {
	if s.raw == nil {
		return &Iterator[A]{section: sectionDone}
	}
	return &Iterator[A]{raw: s.raw.retain()}
}

// Values returns all elements as a new slice, in order.
func (s *Seq[A]) Values() []A {
	if s.Len() == 0 {
		return nil
	}
	out := make([]A, 0, s.Len())
	it := s.Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		out = append(out, value)
	}
	return out
}

// Equal reports whether s and other hold equal elements in the same order,
// compared pairwise with eq.
func (s *Seq[A]) Equal(other *Seq[A], eq func(a, b A) bool) bool {
	if other == nil || s.Len() != other.Len() {
		return false
	}
	a, b := s.Iter(), other.Iter()
	for {
		va, ok := a.Next()
		if !ok {
			// lengths matched, so b is exhausted too; drain to release
			// its snapshot
			b.Next()
			return true
		}
		vb, _ := b.Next()
		if !eq(va, vb) {
			return false
		}
	}
}
