package singleton

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_SamePointer(t *testing.T) {
	a := Instance()
	b := Instance()
	assert.Same(t, a, b)
}

func TestInstance_ConcurrentFirstUse(t *testing.T) {
	const n = 16
	got := make([]*Settings, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Instance()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}

func TestDemo(t *testing.T) {
	lines, err := Demo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"singleton: requesting settings from 4 goroutines",
		`singleton: initialized once (greeting="hello, patternlab")`,
		"singleton: all 4 callers received the same instance",
	}, lines)
}
