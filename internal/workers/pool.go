package workers

import (
	"context"
	"sync"
	"sync/atomic"
)

// WorkerPool runs jobs on a fixed number of goroutines and delivers every
// result on Results. Results is closed after all workers have stopped.
type WorkerPool[T any] struct {
	workersCount  int
	jobs          chan Job[T]
	Results       chan Result[T]
	Done          chan struct{}
	activeWorkers int32
}

func New[T any](numWorkers int) *WorkerPool[T] {
	return &WorkerPool[T]{
		workersCount: numWorkers,
		jobs:         make(chan Job[T]),
		Results:      make(chan Result[T]),
		Done:         make(chan struct{}),
	}
}

// AddJob queues a job, giving up when ctx is cancelled. Reports whether the
// job was accepted.
func (wp *WorkerPool[T]) AddJob(ctx context.Context, job Job[T]) bool {
	select {
	case wp.jobs <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[T]) Close() {
	close(wp.jobs)
}

func (wp *WorkerPool[T]) ActiveWorkersCount() int32 {
	return atomic.LoadInt32(&wp.activeWorkers)
}

func (wp *WorkerPool[T]) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < wp.workersCount; i++ {
		wg.Add(1)
		go worker(ctx, &wg, wp)
	}

	wg.Wait()
	close(wp.Results)
	close(wp.Done)
}

func worker[T any](ctx context.Context, wg *sync.WaitGroup, wp *WorkerPool[T]) {
	defer wg.Done()

	atomic.AddInt32(&wp.activeWorkers, 1)
	defer atomic.AddInt32(&wp.activeWorkers, -1)

	for {
		select {
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}
			select {
			case wp.Results <- job.execute(ctx):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
