// Package persistence stores completed rewriting systems so that later
// processes can skip Knuth-Bendix completion for presentations they have
// already seen. Only frozen, confluent rule sets are ever stored; partial
// completion state is never persisted.
package persistence

import (
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"

	"github.com/petrijr/fpsemi/pkg/api"
)

// RuleStore is a rule-set cache backed by SQLite.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing the
// driver, e.g.:
//
//	import _ "modernc.org/sqlite"
type RuleStore struct {
	db *sql.DB
}

// NewRuleStore initializes the required schema in the given database and
// returns a new RuleStore.
func NewRuleStore(db *sql.DB) (*RuleStore, error) {
	s := &RuleStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RuleStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS rule_sets (
			fingerprint TEXT PRIMARY KEY,
			rules BLOB NOT NULL,
			nr_rules INTEGER NOT NULL
		);`,
	)
	return err
}

// Save stores the dump of a confluent rule set under the presentation
// fingerprint, replacing any previous entry.
func (s *RuleStore) Save(fingerprint, dump string, nrRules int) error {
	_, err := s.db.Exec(`
		INSERT INTO rule_sets (fingerprint, rules, nr_rules)
		VALUES (?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET rules = excluded.rules, nr_rules = excluded.nr_rules`,
		fingerprint,
		[]byte(dump),
		nrRules,
	)
	return err
}

// Load returns the stored dump for fingerprint; ok is false on a cache miss.
func (s *RuleStore) Load(fingerprint string) (dump string, ok bool, err error) {
	var rules []byte
	row := s.db.QueryRow(`SELECT rules FROM rule_sets WHERE fingerprint = ?`, fingerprint)
	if err := row.Scan(&rules); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(rules), true, nil
}

// Fingerprint derives a stable cache key from a presentation's generator
// count, relations and extra pairs. Relation order matters: presentations
// that differ only in ordering complete to the same system, but cheaply
// detecting that is not worth conflating keys over.
func Fingerprint(nrGens int, relations, extra []api.Relation) string {
	h := sha256.New()
	writeInt := func(n int) {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(n))
		h.Write(buf[:])
	}
	writeWord := func(w api.Word) {
		writeInt(len(w))
		for _, letter := range w {
			writeInt(letter)
		}
	}
	writeRels := func(rels []api.Relation) {
		writeInt(len(rels))
		for _, rel := range rels {
			writeWord(rel.Left)
			writeWord(rel.Right)
		}
	}
	writeInt(nrGens)
	writeRels(relations)
	writeRels(extra)
	return hex.EncodeToString(h.Sum(nil))
}
