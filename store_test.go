package evictcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeKeys(s *orderedStore[int, int]) []int {
	var keys []int

	for _, e := range s.elements() {
		keys = append(keys, e.key)
	}

	return keys
}

func TestOrderedStore(t *testing.T) {
	now := time.Now()

	s, err := newOrderedStore[int, int](5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		s.insert(newElement(i, i*10, now.Add(time.Duration(i)*time.Second)))
	}

	assert.Equal(t, 5, s.len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, storeKeys(s))

	e, found := s.peek(1)
	assert.True(t, found)
	assert.Equal(t, 10, e.value)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, storeKeys(s))

	e, found = s.moveToRecent(1)
	assert.True(t, found)
	assert.Equal(t, 10, e.value)
	assert.Equal(t, []int{0, 2, 3, 4, 1}, storeKeys(s))

	_, found = s.moveToRecent(100)
	assert.False(t, found)

	e, found = s.removeHead()
	assert.True(t, found)
	assert.Equal(t, 0, e.key)

	e, found = s.remove(3)
	assert.True(t, found)
	assert.Equal(t, 30, e.value)

	_, found = s.remove(3)
	assert.False(t, found)
	assert.Equal(t, []int{2, 4, 1}, storeKeys(s))

	n := s.removeOldestBy(func(e *element[int, int]) bool {
		return e.lastAccess.Before(now.Add(3 * time.Second))
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{4}, storeKeys(s))

	s.purge()
	assert.Equal(t, 0, s.len())

	_, found = s.removeHead()
	assert.False(t, found)
}

func TestOrderedStore_invalidCapacity(t *testing.T) {
	_, err := newOrderedStore[int, int](0)
	assert.Error(t, err)
}
