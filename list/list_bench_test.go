package list

import "testing"

func BenchmarkPush(b *testing.B) {
	b.ReportAllocs()
	l := New[int](0)
	for b.Loop() {
		l.Push(1)
	}
}

func BenchmarkPushPreallocated(b *testing.B) {
	b.ReportAllocs()
	l := New[int](0)
	l.Reserve(1 << 20)
	for b.Loop() {
		if l.Len() == l.Cap() {
			l.Clear()
		}
		l.Push(1)
	}
}

// BenchmarkPushBatchVsLoop compares a single batch append against pushing
// the same elements one at a time.
func BenchmarkPushBatchVsLoop(b *testing.B) {
	batch := make([]int, 256)

	b.Run("PushBatch", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			l := New[int](0)
			l.PushBatch(batch)
		}
	})

	b.Run("PushLoop", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			l := New[int](0)
			for _, v := range batch {
				l.Push(v)
			}
		}
	})
}

func BenchmarkGet(b *testing.B) {
	l := New[int](0)
	for i := range 1024 {
		l.Push(i)
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		v, _ := l.Get(i & 1023)
		_ = v
		i++
	}
}

func BenchmarkUnshift(b *testing.B) {
	// Worst case: every insert moves the whole buffer.
	l := New[int](0)
	b.ReportAllocs()
	for b.Loop() {
		if l.Len() >= 4096 {
			l.Clear()
		}
		l.Unshift(1)
	}
}

func BenchmarkFilter(b *testing.B) {
	l := New[int](0)
	for i := range 4096 {
		l.Push(i)
	}
	even := func(v int) bool { return v%2 == 0 }
	b.ReportAllocs()
	for b.Loop() {
		l.Filter(even)
	}
}
