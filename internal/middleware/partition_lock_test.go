package middleware_test

import (
	"sync"
	"testing"

	"go-sweldo/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestPartitionLock_Lock(t *testing.T) {
	t.Run("serializes one key", func(t *testing.T) {
		lock := middleware.NewPartitionLock()

		var counter int
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := lock.Lock("EMP-1")
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		lock := middleware.NewPartitionLock()

		unlockA := lock.Lock("EMP-1")
		// acquiring a second key while the first is held must not deadlock
		unlockB := lock.Lock("EMP-2")
		unlockB()
		unlockA()

		// the same key is reusable after unlock
		unlock := lock.Lock("EMP-1")
		unlock()
	})
}
