// Package parallel provides the worker pool used to partition exhaustive
// permutation search across CPUs. The pool offers controlled concurrency
// with backpressure: submission blocks once every worker is busy and the
// queue is full, so a huge permutation space cannot pile up unbounded tasks.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut
// down.
var ErrPoolShutdown = errors.New("worker pool has been shutdown")

// WorkerPool manages a fixed set of goroutines executing submitted tasks.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a pool with the given number of workers. A count of
// zero or less defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2), // buffered for backpressure
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the number of workers in the pool.
func (wp *WorkerPool) Workers() int { return wp.maxWorkers }

// worker is the main loop processing tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit enqueues a task for execution. When the queue is full, Submit
// blocks until a worker frees up, the context is cancelled, or the pool is
// shut down.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the pool, waiting for in-flight tasks to finish. Safe to
// call more than once.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}
