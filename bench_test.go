package seq

import (
	"strconv"
	"testing"
)

var benchSizes = []int{10, 100, 1000}

func benchSizesRun(b *testing.B, fn func(b *testing.B, size int)) {
	b.Helper()
	for _, size := range benchSizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			fn(b, size)
		})
	}
}

func BenchmarkSeq_PushFront(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for j := 0; j < size; j++ {
				s = s.PushFront(j)
			}
		}
	})
}

func BenchmarkSeq_PushBack(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for j := 0; j < size; j++ {
				s = s.PushBack(j)
			}
		}
	})
}

func BenchmarkSeq_PushFrontMut(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for j := 0; j < size; j++ {
				s.PushFrontMut(j)
			}
		}
	})
}

func BenchmarkSeq_PushBackMut(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for j := 0; j < size; j++ {
				s.PushBackMut(j)
			}
		}
	})
}

func BenchmarkSeq_PopFront(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		src := From(intRange(0, size+1)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := src
			for j := 0; j < size; j++ {
				_, s, _ = s.PopFront()
			}
		}
	})
}

func BenchmarkSeq_PopBack(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		src := From(intRange(0, size+1)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := src
			for j := 0; j < size; j++ {
				_, s, _ = s.PopBack()
			}
		}
	})
}

func BenchmarkSeq_PopFrontMut(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		src := From(intRange(0, size)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := src.Clone()
			for j := 0; j < size; j++ {
				s.PopFrontMut()
			}
		}
	})
}

func BenchmarkSeq_PopBackMut(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		src := From(intRange(0, size)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := src.Clone()
			for j := 0; j < size; j++ {
				s.PopBackMut()
			}
		}
	})
}

func BenchmarkSeq_Concat(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		s := From(intRange(0, size)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Concat(s)
		}
	})
}

func BenchmarkSeq_Split(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		s := From(intRange(0, size)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = s.Split(size / 2)
		}
	})
}

func BenchmarkSeq_IterSum(b *testing.B) {
	benchSizesRun(b, func(b *testing.B, size int) {
		s := From(intRange(0, size)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sum := 0
			it := s.Iter()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				sum += v
			}
			if sum != size*(size-1)/2 {
				b.Fatal(`bad sum`)
			}
		}
	})
}
