package uithread

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func startRunner(t *testing.T) *Runner {
	t.Helper()
	r := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go r.Run(ctx)
	return r
}

func TestRunner_PostOrder(t *testing.T) {
	r := startRunner(t)

	var got []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		r.Post(func() {
			got = append(got, i)
		})
	}
	r.Post(func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for posted jobs")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestRunner_PostAndWaitBlocksUntilDone(t *testing.T) {
	r := startRunner(t)

	ran := false
	r.PostAndWait(func() {
		time.Sleep(10 * time.Millisecond)
		ran = true
	})
	assert.True(t, ran)
}

func TestRunner_PostAndWaitReentrant(t *testing.T) {
	r := startRunner(t)

	// a job already on the interactive context submits nested blocking
	// work; it must run inline instead of deadlocking
	var nested bool
	done := make(chan struct{})
	r.Post(func() {
		r.PostAndWait(func() {
			nested = true
		})
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reentrant PostAndWait deadlocked")
	}
	assert.True(t, nested)
}

func TestRunner_PostAndWaitObservesSideEffects(t *testing.T) {
	r := startRunner(t)

	value := 0
	r.PostAndWait(func() { value = 42 })
	assert.Equal(t, 42, value)
}
