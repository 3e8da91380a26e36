package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrQueueClosed is returned by Enqueue after Close
var ErrQueueClosed = errors.New("update queue closed")

// Task is one unit of work run by the queue
type Task func(ctx context.Context) error

type queuedTask struct {
	seq  uint64
	name string
	run  Task
}

// Queue runs tasks one at a time in arrival order.
// A failing or panicking task is logged and the next one still runs.
// The backlog is unbounded.
type Queue struct {
	logger *zap.Logger

	mu      sync.Mutex
	backlog []queuedTask
	seq     uint64
	closed  bool

	wake   chan struct{}
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
}

// NewQueue creates a queue and starts its worker
func NewQueue(logger *zap.Logger) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
	go q.work()
	return q
}

// Enqueue appends a task to the backlog
func (q *Queue) Enqueue(name string, task Task) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.seq++
	q.backlog = append(q.backlog, queuedTask{seq: q.seq, name: name, run: task})
	pending := len(q.backlog)
	q.mu.Unlock()

	q.signal()

	q.logger.Debug("Task enqueued", zap.String("task", name), zap.Int("pending", pending))
	return nil
}

// Len returns the number of tasks waiting to run, excluding the running one
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Close stops accepting tasks and waits for the backlog to drain.
// If ctx expires first, the running task's context is cancelled and the rest are dropped.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()

	select {
	case <-q.done:
		q.cancel()
		return nil
	case <-ctx.Done():
		q.cancel()
		q.mu.Lock()
		dropped := len(q.backlog)
		q.backlog = nil
		q.mu.Unlock()
		q.logger.Warn("Update queue did not drain in time",
			zap.Int("dropped", dropped), zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// next pops the oldest task. ok is false once the queue is closed and empty.
func (q *Queue) next() (queuedTask, bool, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.backlog) > 0 {
		t := q.backlog[0]
		q.backlog[0] = queuedTask{}
		q.backlog = q.backlog[1:]
		return t, true, false
	}
	return queuedTask{}, false, q.closed
}

func (q *Queue) work() {
	defer close(q.done)

	for {
		task, ok, finished := q.next()
		if finished {
			return
		}
		if !ok {
			select {
			case <-q.wake:
			case <-q.ctx.Done():
				return
			}
			continue
		}

		if err := q.run(task); err != nil {
			q.logger.Error("Update task failed",
				zap.String("task", task.name),
				zap.Uint64("seq", task.seq),
				zap.Error(err))
		}
	}
}

// run executes a single task, turning a panic into an error
func (q *Queue) run(task queuedTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task.run(q.ctx)
}
