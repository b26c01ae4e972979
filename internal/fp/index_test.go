package fp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/fpsemi/pkg/api"
)

// cyc is a test element: the integers mod m, where generator g acts by
// adding g+1.
type cyc struct {
	n, m int
}

func (c cyc) Key() string { return strconv.Itoa(c.n) }

func (c cyc) MulGen(g int) cyc { return cyc{(c.n + g + 1) % c.m, c.m} }

func cyclic(m int) *Index[cyc] {
	return NewIndex(cyc{0, m}, []cyc{{1, m}})
}

func TestNewIndexSeedsIdentityFirst(t *testing.T) {
	t.Parallel()

	ix := cyclic(5)
	require.Equal(t, 2, ix.CurrentSize())
	require.Equal(t, 0, ix.Position(cyc{0, 5}))
	require.Equal(t, 1, ix.Position(cyc{1, 5}))
	require.False(t, ix.IsDone())
}

func TestNewIndexCollapsesDuplicateGenerators(t *testing.T) {
	t.Parallel()

	ix := NewIndex(cyc{0, 5}, []cyc{{1, 5}, {1, 5}})
	require.Equal(t, 2, ix.CurrentSize())
}

func TestGrowClosesFiniteStructure(t *testing.T) {
	t.Parallel()

	ix := cyclic(5)
	ix.Grow(nil, 5)

	require.True(t, ix.IsDone())
	require.Equal(t, 5, ix.CurrentSize())
	// Discovery order is by reachability, which for one generator is
	// numeric order.
	for n := 0; n < 5; n++ {
		require.Equal(t, n, ix.Position(cyc{n, 5}))
		require.Equal(t, cyc{n, 5}, ix.At(n))
	}
	require.Equal(t, api.Undefined, ix.Position(cyc{7, 5}))

	// Growing a closed index is a no-op.
	ix.Grow(nil, 100)
	require.Equal(t, 5, ix.CurrentSize())
}

func TestGrowMakesProgressWithMinimalBatches(t *testing.T) {
	t.Parallel()

	ix := cyclic(64)
	ix.SetBatchSize(1)

	calls := 0
	for !ix.IsDone() {
		before := ix.CurrentSize()
		ix.Grow(nil, before+1)
		calls++
		if !ix.IsDone() {
			require.Greater(t, ix.CurrentSize(), before, "call %d made no progress", calls)
		}
		require.Less(t, calls, 1000, "enumeration failed to close")
	}
	require.Equal(t, 64, ix.CurrentSize())
}

func TestGrowStopsAtTarget(t *testing.T) {
	t.Parallel()

	ix := cyclic(1000)
	ix.SetBatchSize(1)
	ix.Grow(nil, 10)

	require.GreaterOrEqual(t, ix.CurrentSize(), 10)
	require.Less(t, ix.CurrentSize(), 1000)
	require.False(t, ix.IsDone())

	// A target at or below the current size does nothing.
	size := ix.CurrentSize()
	ix.Grow(nil, size)
	require.Equal(t, size, ix.CurrentSize())
}

func TestGrowHonoursCancellation(t *testing.T) {
	t.Parallel()

	sig := api.NewSignal()
	sig.Cancel()

	ix := cyclic(100)
	ix.Grow(sig, 50)
	require.Equal(t, 2, ix.CurrentSize())

	// Clearing the signal lets the same index resume.
	sig.Reset()
	ix.Grow(sig, 100)
	require.True(t, ix.IsDone())
	require.Equal(t, 100, ix.CurrentSize())
}

func TestPositionNeverTriggersDiscovery(t *testing.T) {
	t.Parallel()

	ix := cyclic(5)
	require.Equal(t, api.Undefined, ix.Position(cyc{3, 5}))
	require.Equal(t, 2, ix.CurrentSize())
}
