package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsTasks(t *testing.T) {
	p := NewPool(4)

	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		p.Submit(func() {
			atomic.AddInt64(&count, 1)
			wg.Done()
		})
	}
	wg.Wait()
	p.Stop()
	require.EqualValues(t, 100, count)
}

func TestPoolStopWaitsForInflight(t *testing.T) {
	p := NewPool(1)
	done := false
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	ran := make(chan struct{})
	p.Submit(func() { close(ran) })
	<-ran
	p.Stop()
}

func TestPoolIgnoresNilTask(t *testing.T) {
	p := NewPool(1)
	p.Submit(nil)
	p.Stop()
}
