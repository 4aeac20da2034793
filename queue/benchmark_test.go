package queue

import (
	"testing"
)

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.TryEnqueue(i)
		q.TryDequeue()
	}
}

func BenchmarkContended(b *testing.B) {
	q := New[int](1 << 14)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				q.TryEnqueue(i)
			} else {
				q.TryDequeue()
			}
			i++
		}
	})
}
