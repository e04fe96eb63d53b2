package concurrency

import (
	"sync"
)

// LockManager handles named locks. Each global dataset kind and each
// guild-ID-keyed document gets its own mutex so full load-reconcile-mutate-save
// cycles on different datasets never serialize against each other.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the named lock. The lock covers the whole
// callback so read-modify-write cycles on a dataset cannot interleave.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
