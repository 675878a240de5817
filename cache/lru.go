package cache

import "github.com/NileshVirkar/fplutil/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// Entries embed their list node directly, so each cache entry costs a single
// allocation, and recency updates are pure pointer rewiring on the recency
// queue.
type LRU[K comparable, V any] struct {
	index map[K]*entry[K, V]
	queue list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	list.Node
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return len(lru.index)
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]*entry[K, V])
	}
	if e, ok := lru.index[key]; ok {
		previous, replaced = e.value, true
		e.value = value
		lru.queue.MoveToFront(e)
		return previous, replaced
	}
	e := &entry[K, V]{key: key, value: value}
	lru.queue.PushFront(e)
	lru.index[key] = e
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	e, ok := lru.index[key]
	if ok {
		lru.queue.MoveToFront(e)
		value, found = e.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	e, ok := lru.index[key]
	if ok {
		delete(lru.index, key)
		list.Remove(e)
		value, deleted = e.value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if e := lru.queue.RemoveBack(); e != nil {
		delete(lru.index, e.key)
		key, value, evicted = e.key, e.value, true
	}
	return key, value, evicted
}

// Range presents the entries from most recently to least recently used.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	lru.queue.Range(func(e *entry[K, V]) bool {
		return f(e.key, e.value)
	})
}
