package handles

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLookupUnregister(t *testing.T) {
	before := Count()

	id := Register("payload")
	require.NotZero(t, id)
	require.Equal(t, "payload", Lookup(id))

	require.True(t, Replace(id, 42))
	require.Equal(t, 42, Lookup(id))

	Unregister(id)
	require.Nil(t, Lookup(id))
	require.Equal(t, before, Count())

	// Idempotent on unknown and zero keys.
	Unregister(id)
	Unregister(0)
	require.False(t, Replace(id, "x"))
}

func TestLookupZeroIsNil(t *testing.T) {
	require.Nil(t, Lookup(0))
}

func TestConcurrentRegistration(t *testing.T) {
	before := Count()

	const workers = 16
	const each = 100

	var wg sync.WaitGroup
	ids := make(chan uintptr, workers*each)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j++ {
				ids <- Register(j)
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uintptr]bool)
	for id := range ids {
		require.False(t, seen[id], "key reused")
		seen[id] = true
		Unregister(id)
	}
	require.Equal(t, before, Count())
}
