package seq

import (
	"slices"
)

// middle is the ordered run of chunks between the inner buffer slots. Chunks
// stored in a middle are never empty; pushes evict only full chunks into it,
// but a concatenation can leave partly filled ones.
type middle[A any] []*ref[chunk[A]]

func (m middle[A]) clone() middle[A] {
	out := make(middle[A], len(m))
	for i, c := range m {
		out[i] = c.retain()
	}
	return out
}

func (m middle[A]) releaseAll() {
	for _, c := range m {
		c.release()
	}
}

// rawSeq is the spine: two outer buffers, two inner buffers, and the middle
// run of chunks, in logical left-to-right order outerF, innerF, middle,
// innerB, outerB. The outer slots are the active ends; a filled outer chunk
// is demoted to the inner slot, and a displaced full inner chunk is evicted
// into the middle, which bounds the work any single push or pop performs.
//
// length is the total element count across all slots, and middleLength the
// element count across the middle alone. Both are maintained eagerly.
type rawSeq[A any] struct {
	length       int
	middleLength int
	outerF       *ref[chunk[A]]
	innerF       *ref[chunk[A]]
	middle       *ref[middle[A]]
	innerB       *ref[chunk[A]]
	outerB       *ref[chunk[A]]
}

func newRawSeq[A any]() rawSeq[A] {
	return rawSeq[A]{
		outerF: newRef(newChunk[A]()),
		innerF: newRef(newChunk[A]()),
		middle: newRef(middle[A](nil)),
		innerB: newRef(newChunk[A]()),
		outerB: newRef(newChunk[A]()),
	}
}

// clone is a shallow copy: both spines share every chunk until one of them
// needs to write.
func (s *rawSeq[A]) clone() rawSeq[A] {
	return rawSeq[A]{
		length:       s.length,
		middleLength: s.middleLength,
		outerF:       s.outerF.retain(),
		innerF:       s.innerF.retain(),
		middle:       s.middle.retain(),
		innerB:       s.innerB.retain(),
		outerB:       s.outerB.retain(),
	}
}

// dispose releases every reference held by s. The spine must not be used
// afterwards.
func (s *rawSeq[A]) dispose() {
	s.outerF.release()
	s.innerF.release()
	if s.middle.release() {
		s.middle.value.releaseAll()
	}
	s.innerB.release()
	s.outerB.release()
}

// middleMut makes the middle vector unique and returns it for writing. The
// chunks inside remain shared; use chunkMut on individual entries.
func (s *rawSeq[A]) middleMut() *middle[A] {
	if !s.middle.unique() {
		m := s.middle.value.clone()
		s.middle.release()
		s.middle = newRef(m)
	}
	return &s.middle.value
}

func (s *rawSeq[A]) pushFront(value A) {
	if s.outerF.value.full() {
		s.outerF, s.innerF = s.innerF, s.outerF
		if !s.outerF.value.empty() {
			// a displaced non-empty inner chunk is always full: it was
			// itself an outer chunk that filled before demotion
			if !s.outerF.value.full() {
				panic(`seq: push front: displaced inner chunk not full`)
			}
			evicted := s.outerF
			s.outerF = newRef(newChunk[A]())
			s.middleLength += evicted.value.len()
			m := s.middleMut()
			*m = slices.Insert(*m, 0, evicted)
		}
	}
	s.length++
	chunkMut(&s.outerF).pushFront(value)
}

func (s *rawSeq[A]) pushBack(value A) {
	if s.outerB.value.full() {
		s.outerB, s.innerB = s.innerB, s.outerB
		if !s.outerB.value.empty() {
			if !s.outerB.value.full() {
				panic(`seq: push back: displaced inner chunk not full`)
			}
			evicted := s.outerB
			s.outerB = newRef(newChunk[A]())
			s.middleLength += evicted.value.len()
			m := s.middleMut()
			*m = append(*m, evicted)
		}
	}
	s.length++
	chunkMut(&s.outerB).pushBack(value)
}

func (s *rawSeq[A]) popFront() (A, bool) {
	if s.length == 0 {
		var zero A
		return zero, false
	}
	if s.outerF.value.empty() {
		// refill from the first non-empty slot, same side first
		switch {
		case !s.innerF.value.empty():
			s.outerF, s.innerF = s.innerF, s.outerF
		case len(s.middle.value) != 0:
			m := s.middleMut()
			head := (*m)[0]
			*m = slices.Delete(*m, 0, 1)
			s.middleLength -= head.value.len()
			s.outerF.release()
			s.outerF = head
		case !s.innerB.value.empty():
			s.outerF, s.innerB = s.innerB, s.outerF
		default:
			s.outerF, s.outerB = s.outerB, s.outerF
		}
	}
	s.length--
	return chunkMut(&s.outerF).popFront(), true
}

func (s *rawSeq[A]) popBack() (A, bool) {
	if s.length == 0 {
		var zero A
		return zero, false
	}
	if s.outerB.value.empty() {
		switch {
		case !s.innerB.value.empty():
			s.outerB, s.innerB = s.innerB, s.outerB
		case len(s.middle.value) != 0:
			m := s.middleMut()
			i := len(*m) - 1
			tail := (*m)[i]
			*m = slices.Delete(*m, i, i+1)
			s.middleLength -= tail.value.len()
			s.outerB.release()
			s.outerB = tail
		case !s.innerF.value.empty():
			s.outerB, s.innerF = s.innerF, s.outerB
		default:
			s.outerB, s.outerF = s.outerF, s.outerB
		}
	}
	s.length--
	return chunkMut(&s.outerB).popBack(), true
}

// pushBufferBack folds the given buffer into the back of the middle, merging
// into the last middle chunk when the combined values fit in one chunk. Takes
// ownership of the reference.
func (s *rawSeq[A]) pushBufferBack(c *ref[chunk[A]]) {
	if c.value.empty() {
		c.release()
		return
	}
	m := s.middleMut()
	if n := len(*m); n != 0 && (*m)[n-1].value.len()+c.value.len() <= chunkSize {
		last := chunkMut(&(*m)[n-1])
		last.values = append(last.values, c.value.values...)
		s.middleLength += c.value.len()
		c.release()
		return
	}
	s.middleLength += c.value.len()
	*m = append(*m, c)
}

// pushBufferFront folds the given buffer into the front of the middle. When
// merging, the existing first chunk's values are appended to the incoming
// buffer and the incoming buffer becomes middle[0], so the incoming chunk
// keeps its identity whenever it is already unique. Takes ownership of the
// reference.
func (s *rawSeq[A]) pushBufferFront(c *ref[chunk[A]]) {
	if c.value.empty() {
		c.release()
		return
	}
	m := s.middleMut()
	if len(*m) != 0 && (*m)[0].value.len()+c.value.len() <= chunkSize {
		added := c.value.len()
		merged := chunkMut(&c)
		merged.values = append(merged.values, (*m)[0].value.values...)
		(*m)[0].release()
		(*m)[0] = c
		s.middleLength += added
		return
	}
	s.middleLength += c.value.len()
	*m = slices.Insert(*m, 0, c)
}

// concat appends other onto the back of s. It consumes other's references:
// other must be a spine owned by the caller, and must not be used afterwards.
func (s *rawSeq[A]) concat(other *rawSeq[A]) {
	if other.length == 0 {
		other.dispose()
		return
	}

	// flush both spines' slots adjacent to the seam into their middles;
	// the pushBuffer calls consume the slot references
	s.pushBufferBack(s.innerB)
	s.pushBufferBack(s.outerB)
	other.pushBufferFront(other.innerF)
	other.pushBufferFront(other.outerF)

	m := s.middleMut()
	om := other.middle.value
	skip := 0
	if n := len(*m); n != 0 && len(om) != 0 && (*m)[n-1].value.len()+om[0].value.len() <= chunkSize {
		last := chunkMut(&(*m)[n-1])
		last.values = append(last.values, om[0].value.values...)
		s.middleLength += om[0].value.len()
		skip = 1
	}
	for _, c := range om[skip:] {
		s.middleLength += c.value.len()
		*m = append(*m, c.retain())
	}

	// adopt other's back slots; the old back slots of s were consumed by
	// the flush above
	s.innerB = other.innerB
	s.outerB = other.outerB
	s.length += other.length
	if other.middle.release() {
		other.middle.value.releaseAll()
	}
}

// splitMiddle partitions the middle around the chunk containing index,
// returning retained left/right runs, the straddling chunk (not retained),
// and the summed element counts of the two runs.
func (s *rawSeq[A]) splitMiddle(index int) (left middle[A], straddle *ref[chunk[A]], right middle[A], leftLen, rightLen int) {
	for _, c := range s.middle.value {
		switch {
		case straddle != nil:
			rightLen += c.value.len()
			right = append(right, c.retain())
		case index < leftLen+c.value.len():
			straddle = c
		default:
			left = append(left, c.retain())
			leftLen += c.value.len()
		}
	}
	if straddle == nil {
		panic(`seq: split: middle index out of range`)
	}
	return
}

// split produces two spines covering [0, index) and [index, length). It does
// not mutate s; both results share structure with it.
func (s *rawSeq[A]) split(index int) (left, right rawSeq[A]) {
	if index < 0 || index >= s.length {
		panic(`seq: split: index out of range`)
	}

	local := index
	if local < s.outerF.value.len() {
		c1, c2 := s.outerF.value.split(local)
		left = rawSeq[A]{
			length: index,
			outerF: newRef(c1),
			innerF: newRef(newChunk[A]()),
			middle: newRef(middle[A](nil)),
			innerB: newRef(newChunk[A]()),
			outerB: newRef(newChunk[A]()),
		}
		right = rawSeq[A]{
			length:       s.length - index,
			middleLength: s.middleLength,
			outerF:       newRef(c2),
			innerF:       s.innerF.retain(),
			middle:       s.middle.retain(),
			innerB:       s.innerB.retain(),
			outerB:       s.outerB.retain(),
		}
		return
	}

	local -= s.outerF.value.len()
	if local < s.innerF.value.len() {
		c1, c2 := s.innerF.value.split(local)
		left = rawSeq[A]{
			length: index,
			outerF: s.outerF.retain(),
			innerF: newRef(newChunk[A]()),
			middle: newRef(middle[A](nil)),
			innerB: newRef(newChunk[A]()),
			outerB: newRef(c1),
		}
		right = rawSeq[A]{
			length:       s.length - index,
			middleLength: s.middleLength,
			outerF:       newRef(c2),
			innerF:       newRef(newChunk[A]()),
			middle:       s.middle.retain(),
			innerB:       s.innerB.retain(),
			outerB:       s.outerB.retain(),
		}
		return
	}

	local -= s.innerF.value.len()
	if local < s.middleLength {
		m1, straddle, m2, leftLen, rightLen := s.splitMiddle(local)
		c1, c2 := straddle.value.split(local - leftLen)
		left = rawSeq[A]{
			length:       index,
			middleLength: leftLen,
			outerF:       s.outerF.retain(),
			innerF:       s.innerF.retain(),
			middle:       newRef(m1),
			innerB:       newRef(newChunk[A]()),
			outerB:       newRef(c1),
		}
		right = rawSeq[A]{
			length:       s.length - index,
			middleLength: rightLen,
			outerF:       newRef(c2),
			innerF:       newRef(newChunk[A]()),
			middle:       newRef(m2),
			innerB:       s.innerB.retain(),
			outerB:       s.outerB.retain(),
		}
		return
	}

	local -= s.middleLength
	if local < s.innerB.value.len() {
		c1, c2 := s.innerB.value.split(local)
		left = rawSeq[A]{
			length:       index,
			middleLength: s.middleLength,
			outerF:       s.outerF.retain(),
			innerF:       s.innerF.retain(),
			middle:       s.middle.retain(),
			innerB:       newRef(newChunk[A]()),
			outerB:       newRef(c1),
		}
		right = rawSeq[A]{
			length: s.length - index,
			outerF: newRef(c2),
			innerF: newRef(newChunk[A]()),
			middle: newRef(middle[A](nil)),
			innerB: newRef(newChunk[A]()),
			outerB: s.outerB.retain(),
		}
		return
	}

	local -= s.innerB.value.len()
	c1, c2 := s.outerB.value.split(local)
	left = rawSeq[A]{
		length:       index,
		middleLength: s.middleLength,
		outerF:       s.outerF.retain(),
		innerF:       s.innerF.retain(),
		middle:       s.middle.retain(),
		innerB:       s.innerB.retain(),
		outerB:       newRef(c1),
	}
	right = rawSeq[A]{
		length: s.length - index,
		outerF: newRef(newChunk[A]()),
		innerF: newRef(newChunk[A]()),
		middle: newRef(middle[A](nil)),
		innerB: newRef(newChunk[A]()),
		outerB: newRef(c2),
	}
	return
}
