package evictcache

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// orderedStore maps keys to elements and keeps them in iteration order.
//
// Oldest element is at the head, recently inserted or moved element is at the tail.
// The store does not decide what to evict, capacity is enforced by the caller before insert.
// Not safe for concurrent use.
type orderedStore[K comparable, V any] struct {
	l *simplelru.LRU[K, *element[K, V]]
}

func newOrderedStore[K comparable, V any](capacity int) (*orderedStore[K, V], error) {
	l, err := simplelru.NewLRU[K, *element[K, V]](capacity, nil)
	if err != nil {
		return nil, err
	}

	return &orderedStore[K, V]{l: l}, nil
}

// insert appends element at the recent end.
func (s *orderedStore[K, V]) insert(e *element[K, V]) {
	s.l.Add(e.key, e)
}

// peek finds element without changing order.
func (s *orderedStore[K, V]) peek(k K) (*element[K, V], bool) {
	return s.l.Peek(k)
}

// moveToRecent finds element and moves it to the recent end.
func (s *orderedStore[K, V]) moveToRecent(k K) (*element[K, V], bool) {
	return s.l.Get(k)
}

func (s *orderedStore[K, V]) remove(k K) (*element[K, V], bool) {
	e, found := s.l.Peek(k)
	if !found {
		return nil, false
	}

	s.l.Remove(k)

	return e, true
}

func (s *orderedStore[K, V]) removeHead() (*element[K, V], bool) {
	_, e, found := s.l.RemoveOldest()

	return e, found
}

// removeOldestBy deletes all elements matching predicate scanning from the head, returns number of deleted elements.
func (s *orderedStore[K, V]) removeOldestBy(pred func(e *element[K, V]) bool) int {
	n := 0

	for _, e := range s.l.Values() {
		if pred(e) {
			s.l.Remove(e.key)
			n++
		}
	}

	return n
}

// elements returns a snapshot of elements from oldest to newest.
func (s *orderedStore[K, V]) elements() []*element[K, V] {
	return s.l.Values()
}

func (s *orderedStore[K, V]) len() int {
	return s.l.Len()
}

func (s *orderedStore[K, V]) purge() {
	s.l.Purge()
}
