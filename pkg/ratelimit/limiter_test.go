package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(maxRequests, maxStoreSize int) (*Limiter, *time.Time) {
	l := New(time.Minute, maxRequests, maxStoreSize)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLimiter_Allow(t *testing.T) {
	t.Run("admits up to the limit", func(t *testing.T) {
		l, _ := newTestLimiter(3, 100)
		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow("caller"), "request %d", i)
		}
		assert.False(t, l.Allow("caller"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(1, 100)
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
	})

	t.Run("window rotation resets the count", func(t *testing.T) {
		l, clock := newTestLimiter(2, 100)
		assert.True(t, l.Allow("caller"))
		assert.True(t, l.Allow("caller"))
		assert.False(t, l.Allow("caller"))

		*clock = clock.Add(59 * time.Second)
		assert.False(t, l.Allow("caller"))

		*clock = clock.Add(time.Second)
		assert.True(t, l.Allow("caller"))
	})
}

func TestLimiter_Compaction(t *testing.T) {
	t.Run("expired windows are dropped at capacity", func(t *testing.T) {
		l, clock := newTestLimiter(10, 3)
		l.Allow("a")
		l.Allow("b")
		l.Allow("c")
		assert.Equal(t, 3, l.Size())

		// All three are expired by the time a new key arrives
		*clock = clock.Add(2 * time.Minute)
		assert.True(t, l.Allow("d"))
		assert.Equal(t, 1, l.Size())
	})

	t.Run("oldest window evicted when none expired", func(t *testing.T) {
		l, clock := newTestLimiter(10, 3)
		l.Allow("oldest")
		*clock = clock.Add(10 * time.Second)
		l.Allow("middle")
		*clock = clock.Add(10 * time.Second)
		l.Allow("newest")

		*clock = clock.Add(10 * time.Second)
		assert.True(t, l.Allow("incoming"))
		assert.Equal(t, 3, l.Size())

		// The evicted key starts a fresh window and passes again
		assert.True(t, l.Allow("oldest"))
	})

	t.Run("store never exceeds capacity", func(t *testing.T) {
		l, clock := newTestLimiter(1, 5)
		for i := 0; i < 50; i++ {
			l.Allow(fmt.Sprintf("key-%d", i))
			*clock = clock.Add(time.Second)
			assert.LessOrEqual(t, l.Size(), 5)
		}
	})
}

func TestLimiter_Concurrency(t *testing.T) {
	l := New(time.Minute, 100, 1000)

	var wg sync.WaitGroup
	admitted := make([]int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if l.Allow("shared") {
					admitted[g]++
				}
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, n := range admitted {
		total += n
	}
	// 400 attempts against a limit of 100
	assert.Equal(t, 100, total)
}
