package persistence

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/fpsemi/pkg/api"
)

func newTestRuleStore(t *testing.T) *RuleStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewRuleStore(db)
	require.NoError(t, err)
	return store
}

func TestRuleStoreSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	store := newTestRuleStore(t)

	const dump = "0 0 -> 0\n1 0 -> 0 1\n"
	require.NoError(t, store.Save("fp-1", dump, 2))

	got, ok, err := store.Load("fp-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, dump, got)
}

func TestRuleStoreLoadMiss(t *testing.T) {
	t.Parallel()

	store := newTestRuleStore(t)

	_, ok, err := store.Load("never-saved")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRuleStoreSaveReplaces(t *testing.T) {
	t.Parallel()

	store := newTestRuleStore(t)

	require.NoError(t, store.Save("fp-1", "0 0 -> 0\n", 1))
	require.NoError(t, store.Save("fp-1", "0 0 -> e\n", 1))

	got, ok, err := store.Load("fp-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "0 0 -> e\n", got)
}

func TestRuleStoreSchemaIsIdempotent(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	first, err := NewRuleStore(db)
	require.NoError(t, err)
	require.NoError(t, first.Save("fp-1", "0 0 -> 0\n", 1))

	// A second store on the same database must see the same table.
	second, err := NewRuleStore(db)
	require.NoError(t, err)
	_, ok, err := second.Load("fp-1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	rels := []api.Relation{api.Rel(api.W(0, 0), api.W(0))}
	extra := []api.Relation{api.Rel(api.W(0), api.W(1))}

	base := Fingerprint(2, rels, extra)
	require.Equal(t, base, Fingerprint(2, rels, extra), "fingerprint must be stable")

	require.NotEqual(t, base, Fingerprint(3, rels, extra))
	require.NotEqual(t, base, Fingerprint(2, rels, nil))
	require.NotEqual(t, base, Fingerprint(2, nil, extra))
	require.NotEqual(t, base,
		Fingerprint(2, []api.Relation{api.Rel(api.W(0, 0), api.W(1))}, extra))

	// Moving a pair between sections must change the key.
	require.NotEqual(t,
		Fingerprint(2, rels, extra),
		Fingerprint(2, append(append([]api.Relation(nil), rels...), extra...), nil))
}
