// Package seq implements a persistent double-ended sequence, a chunked deque
// with amortized O(1) push and pop at both ends, split and concatenation whose
// cost grows with the number of chunks rather than the number of elements,
// and aggressive structural sharing between versions.
//
// Every operation comes in two flavors. The persistent flavor (e.g.
// [Seq.PushBack]) leaves the receiver untouched and returns a new sequence
// sharing almost all of its structure with the old one. The in-place flavor
// (e.g. [Seq.PushBackMut]) mutates the receiver, copying shared internals
// only as far as necessary, which makes it cheap when the receiver is the
// sole owner of its structure.
//
// The meaning of "persistent" here is structural, not durable: old versions
// remain valid and unchanged after new versions are derived from them.
// Internally the sequence is a spine of up to four small buffer chunks plus a
// vector of further non-empty chunks, all addressed through reference-counted pointers;
// mutation happens in place exactly when the mutating sequence holds the only
// reference, and copies the affected node first otherwise.
//
// Sequences obtained from one another may be used from different goroutines
// without additional synchronization, as the sharing bookkeeping is atomic. A
// single *Seq value must not be used concurrently, and must not be copied by
// assignment; use [Seq.Clone], which is O(1).
package seq
