package queue

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCapacityRounding verifies requested capacities round up to powers of two
func TestCapacityRounding(t *testing.T) {
	tests := []struct {
		requested uint64
		actual    uint64
	}{
		{15, 16},
		{17, 32},
		{100, 128},
		{2, 2},
		{0, 2},
		{1, 2},
		{1024, 1024},
	}

	for _, tt := range tests {
		q := New[int](tt.requested)
		assert.Equal(t, tt.actual, q.Capacity(), "requested %d", tt.requested)
	}
}

// TestFullQueue verifies the one-slot-reserved full condition
func TestFullQueue(t *testing.T) {
	q := New[int](16)
	require.Equal(t, uint64(16), q.Capacity())

	for i := 0; i < 15; i++ {
		require.True(t, q.TryEnqueue(i), "enqueue %d should succeed", i)
	}
	assert.False(t, q.TryEnqueue(15), "queue should be full at capacity-1 items")
	assert.Equal(t, uint64(15), q.Size())

	// Dequeue one, enqueue becomes possible again
	v, ok := q.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, q.TryEnqueue(15))
}

// TestEmptyQueue verifies dequeue on an empty queue fails without side effect
func TestEmptyQueue(t *testing.T) {
	q := New[string](8)

	assert.True(t, q.IsEmpty())
	_, ok := q.TryDequeue()
	assert.False(t, ok)

	require.True(t, q.TryEnqueue("a"))
	assert.False(t, q.IsEmpty())

	v, ok := q.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.True(t, q.IsEmpty())
}

// TestFIFO verifies single-producer single-consumer ordering
func TestFIFO(t *testing.T) {
	const n = 100_000
	q := New[int](1024)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			for !q.TryEnqueue(i) {
				// Queue full, spin until the consumer catches up
			}
		}
	}()

	for i := 0; i < n; i++ {
		var (
			v  int
			ok bool
		)
		for {
			v, ok = q.TryDequeue()
			if ok {
				break
			}
		}
		require.Equal(t, i, v, "FIFO order violated at element %d", i)
	}
	<-done
	assert.True(t, q.IsEmpty())
}

// TestWrapAround exercises the turn counters across several rounds
func TestWrapAround(t *testing.T) {
	q := New[int](4)

	for round := 0; round < 100; round++ {
		for i := 0; i < 3; i++ {
			require.True(t, q.TryEnqueue(round*3+i))
		}
		for i := 0; i < 3; i++ {
			v, ok := q.TryDequeue()
			require.True(t, ok)
			require.Equal(t, round*3+i, v)
		}
	}
	assert.True(t, q.IsEmpty())
}

// TestConservation verifies that under a concurrent producer/consumer mix no
// item is lost or duplicated: enqueues == dequeues + remaining
func TestConservation(t *testing.T) {
	const (
		producers   = 4
		consumers   = 4
		perProducer = 10_000
	)
	q := New[uint64](256)

	var (
		enqueued atomic.Uint64
		dequeued atomic.Uint64
		sumIn    atomic.Uint64
		sumOut   atomic.Uint64
		stop     atomic.Bool
		wg       sync.WaitGroup
	)

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := uint64(p*perProducer + i + 1)
				if q.TryEnqueue(v) {
					enqueued.Add(1)
					sumIn.Add(v)
				}
			}
		}(p)
	}

	var cwg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		cwg.Add(1)
		go func() {
			defer cwg.Done()
			for {
				v, ok := q.TryDequeue()
				if ok {
					dequeued.Add(1)
					sumOut.Add(v)
					continue
				}
				if stop.Load() {
					return
				}
			}
		}()
	}

	wg.Wait()
	stop.Store(true)
	cwg.Wait()

	// Drain whatever the consumers left behind
	var remaining uint64
	for {
		v, ok := q.TryDequeue()
		if !ok {
			break
		}
		remaining++
		sumOut.Add(v)
	}

	assert.Equal(t, enqueued.Load(), dequeued.Load()+remaining)
	assert.Equal(t, sumIn.Load(), sumOut.Load())
	assert.True(t, q.IsEmpty())
}

// TestConcurrentStress runs one producer against one consumer and verifies
// both observe the same number of successful operations
func TestConcurrentStress(t *testing.T) {
	const ops = 10_000
	q := New[int](64)

	var enqueues, dequeues atomic.Uint64
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < ops; i++ {
			for !q.TryEnqueue(i) {
			}
			enqueues.Add(1)
		}
	}()

	for dequeues.Load() < ops {
		if _, ok := q.TryDequeue(); ok {
			dequeues.Add(1)
		}
	}
	<-done

	assert.Equal(t, uint64(ops), enqueues.Load())
	assert.Equal(t, uint64(ops), dequeues.Load())
	assert.True(t, q.IsEmpty())
	assert.Equal(t, uint64(0), q.Size())
}

// TestSizeSnapshot verifies the best-effort size accounting
func TestSizeSnapshot(t *testing.T) {
	q := New[int](32)
	for i := 0; i < 10; i++ {
		require.True(t, q.TryEnqueue(i))
	}
	assert.Equal(t, uint64(10), q.Size())

	for i := 0; i < 4; i++ {
		_, ok := q.TryDequeue()
		require.True(t, ok)
	}
	assert.Equal(t, uint64(6), q.Size())
}
