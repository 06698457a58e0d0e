package keylock_test

import (
	"sync"
	"testing"
	"time"

	"ordering/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	locks := keylock.New[int64]()
	counter := 0
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(1)
			defer unlock()

			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locks.Len())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	locks := keylock.New[int64]()
	unlockFirst := locks.Lock(1)
	defer unlockFirst()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock(2)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
	assert.Equal(t, 1, locks.Len())
}

func TestLocker_ZeroValue(t *testing.T) {
	var locks keylock.Locker[string]

	unlock := locks.Lock("a")
	unlock()

	assert.Equal(t, 0, locks.Len())
}
