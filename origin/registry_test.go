package origin

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tensormap/errs"
)

func TestRegisterAssignsStableIDs(t *testing.T) {
	ResetForTesting()

	first := Register("backend.a")
	second := Register("backend.b")

	require.NotEqual(t, None, first)
	require.NotEqual(t, None, second)
	require.NotEqual(t, first, second)

	// Registering the same identity again yields the same id.
	require.Equal(t, first, Register("backend.a"))
	require.Equal(t, second, Register("backend.b"))
}

func TestRegisterIsMonotonic(t *testing.T) {
	ResetForTesting()

	require.Equal(t, ID(1), Register("backend.a"))
	require.Equal(t, ID(2), Register("backend.b"))
	require.Equal(t, ID(3), Register("backend.c"))
}

func TestNameOf(t *testing.T) {
	ResetForTesting()

	id := Register("backend.a")

	name, err := NameOf(id)
	require.NoError(t, err)
	require.Equal(t, "backend.a", name)
}

func TestNameOfUnknown(t *testing.T) {
	ResetForTesting()

	_, err := NameOf(None)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnknownOrigin))

	_, err = NameOf(ID(42))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnknownOrigin))

	_, err = NameOf(ID(-1))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnknownOrigin))
}

func TestRegisterConcurrent(t *testing.T) {
	ResetForTesting()

	const goroutines = 32

	var wg sync.WaitGroup
	ids := make([]ID, goroutines)

	for i := 0; i < goroutines; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Half the goroutines also register other identities to force
			// contention on the write lock.
			if i%2 == 0 {
				Register("backend.noise")
			}
			ids[i] = Register("backend.shared")
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Equal(t, ids[0], ids[i], "goroutine %d got a different id", i)
	}

	name, err := NameOf(ids[0])
	require.NoError(t, err)
	require.Equal(t, "backend.shared", name)
}
