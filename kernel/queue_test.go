package kernel

import (
	"runtime"
	"sync"
	"testing"
)

func TestQueueTryRecvEmpty(t *testing.T) {
	q := NewQueue[int](4)

	_, ok := q.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestQueueCapacityRoundsUp(t *testing.T) {
	if got := NewQueue[int](5).Cap(); got != 8 {
		t.Fatalf("Cap() = %d, want 8", got)
	}
	if got := NewQueue[int](32).Cap(); got != 32 {
		t.Fatalf("Cap() = %d, want 32", got)
	}
}

func TestQueueTrySendFull(t *testing.T) {
	q := NewQueue[int](8)

	for i := 0; i < q.Cap(); i++ {
		if ok := q.TrySend(i); !ok {
			t.Fatalf("TrySend() ok = false at slot %d, want true", i)
		}
	}
	if ok := q.TrySend(99); ok {
		t.Fatalf("TrySend() ok = true when full, want false")
	}

	for i := 0; i < q.Cap(); i++ {
		v, ok := q.TryRecv()
		if !ok {
			t.Fatalf("TryRecv() ok = false at slot %d, want true", i)
		}
		if v != i {
			t.Fatalf("TryRecv() = %d, want %d", v, i)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", q.Len())
	}
}

func TestQueueWrapsAround(t *testing.T) {
	q := NewQueue[int](2)
	for i := 0; i < 100; i++ {
		if !q.TrySend(i) {
			t.Fatalf("TrySend(%d) ok = false, want true", i)
		}
		v, ok := q.TryRecv()
		if !ok || v != i {
			t.Fatalf("TryRecv() = %d, %v, want %d, true", v, ok, i)
		}
	}
}

func TestQueueCloseDrains(t *testing.T) {
	q := NewQueue[int](4)
	q.Send(1)
	q.Send(2)
	q.Close()

	if q.Send(3) {
		t.Fatalf("Send() after Close ok = true, want false")
	}
	for _, want := range []int{1, 2} {
		v, ok := q.Recv()
		if !ok || v != want {
			t.Fatalf("Recv() = %d, %v, want %d, true", v, ok, want)
		}
	}
	if _, ok := q.Recv(); ok {
		t.Fatalf("Recv() on closed empty queue ok = true, want false")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		producers = 4
		perProd   = 10_000
		total     = producers * perProd
	)

	q := NewQueue[uint32](8)

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for producerID := 0; producerID < producers; producerID++ {
		go func(producerID int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				q.Send(uint32(producerID*perProd + i))
			}
		}(producerID)
	}
	close(start)

	seen := make([]bool, total)
	for i := 0; i < total; i++ {
		id, ok := q.Recv()
		if !ok {
			t.Fatalf("Recv() ok = false, want true")
		}
		if int(id) >= total {
			t.Fatalf("Recv() id = %d, want < %d", id, total)
		}
		if seen[id] {
			t.Fatalf("Recv() duplicate id %d", id)
		}
		seen[id] = true
	}

	wg.Wait()
}
