// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool feeds jobs to its workers. With a single worker jobs run inline on
// the caller's goroutine, in submission order.
type Pool struct {
	wg    sync.WaitGroup
	jobs  chan func()
	close func()
}

// Start launches numWorkers workers, or GOMAXPROCS workers when
// numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.jobs = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.jobs {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.jobs) })

	return pool
}

// Do schedules f. It blocks while every worker is busy and the queue is
// full. Do must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait stops accepting jobs and returns once all scheduled jobs finished.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
