package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// PartitionLock serializes mutations per employee. The engine assumes at
// most one in-flight mutation per employee-month partition and provides no
// internal locking, so the HTTP host is the place that obligation is met.
type PartitionLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPartitionLock() *PartitionLock {
	return &PartitionLock{locks: make(map[string]*sync.Mutex)}
}

func (p *PartitionLock) forKey(key string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.locks[key]; ok {
		return m
	}
	m := &sync.Mutex{}
	p.locks[key] = m
	return m
}

// Lock acquires the employee's mutex and returns the unlock. Handlers
// that only learn the employee id after binding the body use this form.
func (p *PartitionLock) Lock(key string) func() {
	m := p.forKey(key)
	m.Lock()
	return m.Unlock
}

// Serialize returns a middleware holding the employee's lock for the
// duration of the request. keyFn extracts the employee id from the request.
func (p *PartitionLock) Serialize(keyFn func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}
		m := p.forKey(key)
		m.Lock()
		defer m.Unlock()
		c.Next()
	}
}
