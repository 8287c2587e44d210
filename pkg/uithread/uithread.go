// Package uithread provides the single-threaded interactive context
// that owns all user-facing state. Work reaches it only through Post
// and PostAndWait; nothing else may run on its goroutine.
package uithread

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
	"sync/atomic"
)

const (
	// JobBufferSize is the capacity of the pending-work queue.
	JobBufferSize = 256
)

// Runner is a single-goroutine work loop. Jobs run strictly in
// submission order.
type Runner struct {
	jobs chan func()
	gid  atomic.Int64
}

// NewRunner creates a runner. Run must be started on the goroutine
// that is to act as the interactive context.
func NewRunner() *Runner {
	r := &Runner{
		jobs: make(chan func(), JobBufferSize),
	}
	r.gid.Store(-1)
	return r
}

// Run executes submitted jobs until the context is cancelled. It
// claims the calling goroutine as the interactive context.
func (r *Runner) Run(ctx context.Context) {
	r.gid.Store(goroutineID())
	defer r.gid.Store(-1)
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-r.jobs:
			job()
		}
	}
}

// Post enqueues work on the interactive context and returns
// immediately.
func (r *Runner) Post(job func()) {
	r.jobs <- job
}

// PostAndWait enqueues work on the interactive context and blocks the
// caller until it completes. When called from the interactive context
// itself the job runs inline: the loop cannot wait on itself, so
// re-enqueuing from within would deadlock.
func (r *Runner) PostAndWait(job func()) {
	if r.onRunnerGoroutine() {
		job()
		return
	}
	done := make(chan struct{})
	r.jobs <- func() {
		defer close(done)
		job()
	}
	<-done
}

func (r *Runner) onRunnerGoroutine() bool {
	gid := r.gid.Load()
	return gid != -1 && gid == goroutineID()
}

// goroutineID extracts the current goroutine's id from its stack
// header. The runtime offers no public accessor; the header format
// ("goroutine N [...") is stable across releases.
func goroutineID() int64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
