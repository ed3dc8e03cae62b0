package seq

// Traversal sections, in logical left-to-right order.
const (
	sectionOuterF = iota
	sectionInnerF
	sectionMiddle
	sectionInnerB
	sectionOuterB
	sectionDone
)

// Iterator is a single-pass forward iterator over a [Seq]. It traverses a
// snapshot captured when the iterator was created: mutations made through the
// originating sequence after that point are not observed.
type Iterator[A any] struct {
	raw     *ref[rawSeq[A]]
	section int
	offset  int // index into the current chunk
	mid     int // index into the middle, while section == sectionMiddle
}

func (it *Iterator[A]) chunk() *chunk[A] {
	s := &it.raw.value
	switch it.section {
	case sectionOuterF:
		return &s.outerF.value
	case sectionInnerF:
		return &s.innerF.value
	case sectionMiddle:
		if m := s.middle.value; it.mid < len(m) {
			return &m[it.mid].value
		}
	case sectionInnerB:
		return &s.innerB.value
	case sectionOuterB:
		return &s.outerB.value
	}
	return nil
}

// Next returns the next element in logical order, or the zero value and
// false once the sequence is exhausted. Exhausting the iterator releases its
// snapshot.
func (it *Iterator[A]) Next() (A, bool) {
	for it.section != sectionDone {
		if c := it.chunk(); c != nil && it.offset < c.len() {
			value := c.values[it.offset]
			it.offset++
			return value, true
		}
		it.offset = 0
		if it.section == sectionMiddle && it.mid < len(it.raw.value.middle.value) {
			it.mid++
		} else {
			it.section++
		}
	}
	if it.raw != nil {
		it.raw.release()
		it.raw = nil
	}
	var zero A
	return zero, false
}
