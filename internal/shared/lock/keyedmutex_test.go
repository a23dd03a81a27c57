package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()

	const goroutines = 100
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			release := m.Lock("queue-1")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
	assert.Equal(t, 0, m.Len(), "entries should be reclaimed after release")
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	m := NewKeyedMutex()

	releaseA := m.Lock("queue-a")
	defer releaseA()

	// A held lock on another key must not block this acquisition.
	done := make(chan struct{})
	go func() {
		release := m.Lock("queue-b")
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedMutex_ReleaseIsIdempotent(t *testing.T) {
	m := NewKeyedMutex()

	release := m.Lock("queue-1")
	release()
	require.NotPanics(t, func() { release() })

	// Lock must be available again after release.
	release2 := m.Lock("queue-1")
	release2()
	assert.Equal(t, 0, m.Len())
}
