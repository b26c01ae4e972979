package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/fpsemi/pkg/api"
)

func TestToddCoxeterEnumeratesS3(t *testing.T) {
	t.Parallel()

	obs := &countObserver{}
	s := NewToddCoxeter(symmetricGroupS3(t), nil, Config{Observer: obs})
	s.Run()

	require.True(t, s.IsDone())
	require.Equal(t, 6, s.NrClasses())
	require.Equal(t, 0, s.ClassIndex(api.W()))
	require.Equal(t, api.True, s.Equals(api.W(0, 1, 0, 1, 0, 1), api.W()))
	require.Equal(t, api.True, s.Equals(api.W(0, 1, 0), api.W(1, 0, 1)))
	require.Equal(t, api.False, s.Equals(api.W(0, 1), api.W(1, 0)))
	require.Equal(t, 1, obs.dones)
	require.Equal(t, 6, obs.lastNrClasses)
}

func TestToddCoxeterExtraPairsCollapse(t *testing.T) {
	t.Parallel()

	// C3 with the extra pair a=e collapses to the trivial monoid.
	pres := mustPresentation(t, 1,
		[]api.Relation{api.Rel(api.W(0, 0, 0), api.W())},
		[]api.Relation{api.Rel(api.W(0), api.W())},
	)
	s := NewToddCoxeter(pres, nil, Config{})
	s.Run()

	require.True(t, s.IsDone())
	require.Equal(t, 1, s.NrClasses())
	require.Equal(t, 0, s.ClassIndex(api.W(0, 0)))
}

func TestToddCoxeterEarlyAnswers(t *testing.T) {
	t.Parallel()

	s := NewToddCoxeter(symmetricGroupS3(t), nil, Config{})

	// Before any enumeration only identical traces can be confirmed.
	require.Equal(t, api.True, s.Equals(api.W(), api.W()))
	require.Equal(t, api.Unknown, s.Equals(api.W(), api.W(0)))
	require.Equal(t, api.Unknown, s.LessThan(api.W(), api.W(0)))
	require.Equal(t, api.False, s.LessThan(api.W(), api.W()))
	require.False(t, s.IsDone())
}

func TestToddCoxeterBoundedSteps(t *testing.T) {
	t.Parallel()

	s := NewToddCoxeter(symmetricGroupS3(t), nil, Config{})
	calls := 0
	for !s.IsDone() {
		s.RunSteps(1)
		calls++
		require.Less(t, calls, 1000, "enumeration failed to close")
	}
	require.Equal(t, 6, s.NrClasses())
	require.Panics(t, func() { s.RunSteps(1) })
}

func TestToddCoxeterCancellation(t *testing.T) {
	t.Parallel()

	sig := api.NewSignal()
	sig.Cancel()

	s := NewToddCoxeter(symmetricGroupS3(t), sig, Config{})
	s.RunSteps(100)

	require.False(t, s.IsDone())
	require.True(t, s.IsCancelled())
	require.Panics(t, func() { s.NrClasses() })

	sig.Reset()
	s.Run()
	require.True(t, s.IsDone())
	require.Equal(t, 6, s.NrClasses())
}

func TestToddCoxeterRejectsForeignLetters(t *testing.T) {
	t.Parallel()

	s := NewToddCoxeter(symmetricGroupS3(t), nil, Config{})
	s.Run()

	// Same loud failure as KBFP, not a raw index fault from the table.
	require.Panics(t, func() { s.Equals(api.W(0, 2), api.W(0)) })
	require.Panics(t, func() { s.LessThan(api.W(-1), api.W(0)) })
	require.Panics(t, func() { s.ClassIndex(api.W(300)) })
}

// Both strategies must induce the same partition, even though their class
// numberings may differ.
func TestStrategiesAgreeOnS3(t *testing.T) {
	t.Parallel()

	kbfp := NewKBFP(symmetricGroupS3(t), nil, Config{})
	tc := NewToddCoxeter(symmetricGroupS3(t), nil, Config{})
	kbfp.Run()
	tc.Run()

	require.Equal(t, kbfp.NrClasses(), tc.NrClasses())

	words := []api.Word{
		api.W(), api.W(0), api.W(1), api.W(0, 1), api.W(1, 0),
		api.W(0, 1, 0), api.W(1, 0, 1), api.W(0, 0, 1), api.W(1, 1, 0, 0),
	}
	for _, w1 := range words {
		for _, w2 := range words {
			require.Equal(t, kbfp.Equals(w1, w2), tc.Equals(w1, w2),
				"Equals(%v, %v)", w1, w2)
			require.Equal(t,
				kbfp.ClassIndex(w1) == kbfp.ClassIndex(w2),
				tc.ClassIndex(w1) == tc.ClassIndex(w2),
				"partition mismatch on (%v, %v)", w1, w2)
		}
	}
}
