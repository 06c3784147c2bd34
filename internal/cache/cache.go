// Package cache holds derived assets, such as resized images, under a byte
// budget with least-recently-used eviction.
//
// A Cache is meant for the render goroutine and is not safe for concurrent
// use.
package cache

// Cache maps keys to values, each charged a size in bytes. When the total
// exceeds the budget, the least recently used entries are evicted.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[K, V]
	budget  int
	used    int

	// head is the most recently used entry, tail the least.
	head, tail *entry[K, V]

	onEvict func(K, V)
}

type entry[K comparable, V any] struct {
	key        K
	value      V
	size       int
	prev, next *entry[K, V]
}

// New returns a cache holding at most budget bytes. A budget of 0 means
// unlimited.
func New[K comparable, V any](budget int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		budget:  budget,
	}
}

// OnEvict registers fn to be called for each evicted entry.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Set stores value under key with the given size, replacing any previous
// value, and evicts old entries until the cache fits its budget again. An
// entry larger than the whole budget is not stored.
func (c *Cache[K, V]) Set(key K, value V, size int) {
	if old, ok := c.entries[key]; ok {
		c.remove(old)
	}
	if c.budget > 0 && size > c.budget {
		return
	}

	e := &entry[K, V]{key: key, value: value, size: size}
	c.entries[key] = e
	c.used += size
	c.pushFront(e)

	for c.budget > 0 && c.used > c.budget && c.tail != nil {
		old := c.tail
		c.remove(old)
		if c.onEvict != nil {
			c.onEvict(old.key, old.value)
		}
	}
}

// GetOrCreate returns the cached value for key or stores the result of
// create. An error from create is returned and nothing is cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, int, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, size, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v, size)
	return v, nil
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if ok {
		c.remove(e)
	}
	return ok
}

// DeleteFunc removes every entry whose key satisfies del and returns how
// many were removed.
func (c *Cache[K, V]) DeleteFunc(del func(K) bool) int {
	n := 0
	for e := c.head; e != nil; {
		next := e.next
		if del(e.key) {
			c.remove(e)
			n++
		}
		e = next
	}
	return n
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Used returns the total size of all entries.
func (c *Cache[K, V]) Used() int { return c.used }

// Budget returns the byte budget.
func (c *Cache[K, V]) Budget() int { return c.budget }

// Clear removes all entries without calling the eviction callback.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*entry[K, V])
	c.head, c.tail = nil, nil
	c.used = 0
}

func (c *Cache[K, V]) pushFront(e *entry[K, V]) {
	e.prev, e.next = nil, c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (c *Cache[K, V]) moveToFront(e *entry[K, V]) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *Cache[K, V]) remove(e *entry[K, V]) {
	c.unlink(e)
	delete(c.entries, e.key)
	c.used -= e.size
}
