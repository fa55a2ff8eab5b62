package repository

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// keyMutex serializes read-modify-write sequences on shared list keys. The
// store itself is only atomic per key, so two concurrent appends to the
// same owner list would otherwise race and one could be lost. Striped by
// key hash to bound memory.
type keyMutex struct {
	stripes [lockStripes]sync.Mutex
}

func newKeyMutex() *keyMutex {
	return &keyMutex{}
}

func (m *keyMutex) Lock(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	mu := &m.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu
}
