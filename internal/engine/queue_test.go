package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// TestQueue_SequentialWithFailure enqueues three tasks while the first one is blocked.
// The second fails; the third must still run, and no two tasks may overlap.
func TestQueue_SequentialWithFailure(t *testing.T) {
	q := NewQueue(zap.NewNop())

	var (
		mu      sync.Mutex
		order   []string
		active  int
		overlap bool
	)
	record := func(event string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, event)
	}
	enter := func() {
		mu.Lock()
		defer mu.Unlock()
		active++
		if active > 1 {
			overlap = true
		}
	}
	leave := func() {
		mu.Lock()
		defer mu.Unlock()
		active--
	}

	release := make(chan struct{})
	started := make(chan struct{})
	thirdDone := make(chan struct{})

	_ = q.Enqueue("first", func(ctx context.Context) error {
		enter()
		defer leave()
		record("first:start")
		close(started)
		<-release
		record("first:end")
		return nil
	})
	<-started

	_ = q.Enqueue("second", func(ctx context.Context) error {
		enter()
		defer leave()
		record("second")
		return errors.New("controller rejected request")
	})
	_ = q.Enqueue("third", func(ctx context.Context) error {
		enter()
		defer leave()
		record("third")
		close(thirdDone)
		return nil
	})

	if q.Len() != 2 {
		t.Errorf("expected 2 pending tasks, got %d", q.Len())
	}

	close(release)

	select {
	case <-thirdDone:
	case <-time.After(time.Second):
		t.Fatal("Timeout: third task never ran")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"first:start", "first:end", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("want %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d: want %s, got %s", i, want[i], order[i])
		}
	}
	if overlap {
		t.Error("tasks ran concurrently")
	}
}

func TestQueue_PanicIsContained(t *testing.T) {
	q := NewQueue(zap.NewNop())
	ran := make(chan struct{})

	_ = q.Enqueue("panics", func(ctx context.Context) error {
		panic("boom")
	})
	_ = q.Enqueue("after", func(ctx context.Context) error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("Timeout: task after panic never ran")
	}
}

func TestQueue_CloseDrainsBacklog(t *testing.T) {
	q := NewQueue(zap.NewNop())

	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		_ = q.Enqueue("count", func(ctx context.Context) error {
			time.Sleep(time.Millisecond)
			mu.Lock()
			count++
			mu.Unlock()
			return nil
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := q.Close(ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if count != 5 {
		t.Errorf("expected 5 tasks to run before close returned, got %d", count)
	}

	if err := q.Enqueue("late", func(ctx context.Context) error { return nil }); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("expected ErrQueueClosed, got %v", err)
	}
}

func TestQueue_CloseTimeoutCancelsRunningTask(t *testing.T) {
	q := NewQueue(zap.NewNop())
	started := make(chan struct{})
	cancelled := make(chan struct{})

	_ = q.Enqueue("hung", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Close(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("Timeout: running task was not cancelled")
	}
}
