package seq

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// intRange returns [start, end) as a slice.
func intRange[E constraints.Integer](start, end E) []E {
	out := make([]E, 0, int(end-start))
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// chunkOf builds a chunk holding the given values, for tests that assemble
// spines by hand.
func chunkOf[A any](values ...A) chunk[A] {
	if len(values) > chunkSize {
		panic(`seq: test: too many values for a chunk`)
	}
	c := newChunk[A]()
	c.values = append(c.values, values...)
	return c
}

// checkInvariants fails the test unless every structural invariant holds for
// the given sequence: the length fields are in sync with the chunk contents,
// no chunk exceeds its capacity, no middle chunk is empty, and an empty
// sequence has an empty middle.
func checkInvariants[A any](t *testing.T, s *Seq[A]) {
	t.Helper()
	if s.raw == nil {
		return
	}
	raw := &s.raw.value
	mid := 0
	for i, c := range raw.middle.value {
		if c.value.empty() {
			t.Fatalf("empty chunk in middle at index %d:\n%s", i, spew.Sdump(raw))
		}
		if c.value.len() > chunkSize {
			t.Fatalf("oversized chunk in middle at index %d:\n%s", i, spew.Sdump(raw))
		}
		mid += c.value.len()
	}
	require.Equal(t, mid, raw.middleLength, "middleLength out of sync")
	total := raw.outerF.value.len() + raw.innerF.value.len() + mid +
		raw.innerB.value.len() + raw.outerB.value.len()
	require.Equal(t, total, raw.length, "length out of sync")
	for _, c := range []*ref[chunk[A]]{raw.outerF, raw.innerF, raw.innerB, raw.outerB} {
		require.LessOrEqual(t, c.value.len(), chunkSize, "oversized buffer chunk")
	}
	if raw.length == 0 {
		require.Empty(t, raw.middle.value, "empty sequence with non-empty middle")
	}
}
