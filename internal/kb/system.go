package kb

import (
	"fmt"
	"strings"

	"github.com/petrijr/fpsemi/pkg/api"
)

// Rule is an oriented rewrite rule: occurrences of LHS rewrite to RHS, and
// LHS is strictly greater than RHS in the system's reduction order.
type Rule struct {
	LHS string
	RHS string
}

type rule struct {
	lhs    string
	rhs    string
	active bool
}

// System is a growing set of oriented rewrite rules. It is mutable while
// completion runs and frozen once confluent.
type System struct {
	order    ReductionOrder
	rules    []rule
	nrActive int

	// pending holds unresolved pairs: freshly added relations and critical
	// pairs derived during completion, waiting to be reduced and oriented.
	pending []Rule

	confluent bool
	known     bool
}

// NewSystem returns an empty system using the ShortLex reduction order.
func NewSystem() *System {
	return NewSystemWithOrder(ShortLex())
}

// NewSystemWithOrder returns an empty system using the given reduction order.
// The caller is responsible for order being a genuine reduction order.
func NewSystemWithOrder(order ReductionOrder) *System {
	return &System{order: order}
}

// AddRule incorporates the pair (p, q) as an oriented rule. If the two sides
// reduce to the same word nothing is added.
func (s *System) AddRule(p, q string) {
	s.known = false
	s.pending = append(s.pending, Rule{LHS: p, RHS: q})
	s.resolvePending(nil)
}

// AddRelations incorporates a sequence of relation pairs.
func (s *System) AddRelations(rels []api.Relation) {
	for _, rel := range rels {
		s.AddRule(FromWord(rel.Left), FromWord(rel.Right))
	}
}

// NrRules returns the number of active rules.
func (s *System) NrRules() int { return s.nrActive }

// Rules returns the active rules in insertion order.
func (s *System) Rules() []Rule {
	out := make([]Rule, 0, s.nrActive)
	for _, r := range s.rules {
		if r.active {
			out = append(out, Rule{LHS: r.lhs, RHS: r.rhs})
		}
	}
	return out
}

// Rewrite reduces w with the active rules until no rule applies. Termination
// is guaranteed by the reduction order; once the system is confluent the
// result is the unique canonical form of w.
func (s *System) Rewrite(w string) string {
	for {
		changed := false
		for i := range s.rules {
			r := &s.rules[i]
			if !r.active {
				continue
			}
			for {
				idx := strings.Index(w, r.lhs)
				if idx < 0 {
					break
				}
				w = w[:idx] + r.rhs + w[idx+len(r.lhs):]
				changed = true
			}
		}
		if !changed {
			return w
		}
	}
}

// Less reports whether the canonical form of p strictly precedes that of q in
// the reduction order. Meaningful only once the system is confluent.
func (s *System) Less(p, q string) bool {
	a, b := s.Rewrite(p), s.Rewrite(q)
	return a != b && s.order(b, a)
}

// IsConfluent reports whether completion finished without cancellation.
func (s *System) IsConfluent() bool { return s.known && s.confluent }

// SetConfluent marks the system confluent without running completion, for
// use when the rules are restored from a source that already completed them.
func (s *System) SetConfluent(v bool) {
	s.confluent = v
	s.known = true
}

// Restore appends already-oriented rules, trusting their orientation.
// Intended for rule sets previously produced by a System with the same
// reduction order.
func (s *System) Restore(rules []Rule) {
	for _, r := range rules {
		s.rules = append(s.rules, rule{lhs: r.LHS, rhs: r.RHS, active: true})
		s.nrActive++
	}
}

// Compress drops deactivated rules.
func (s *System) Compress() {
	out := s.rules[:0]
	for _, r := range s.rules {
		if r.active {
			out = append(out, r)
		}
	}
	s.rules = out
}

// resolvePending reduces, orients and activates pending pairs until the
// stack is empty or sig is cancelled. Activating a rule interreduces the
// existing ones: any rule whose left-hand side the new rule rewrites is
// deactivated and re-queued, and right-hand sides are kept reduced.
func (s *System) resolvePending(sig *api.Signal) {
	for len(s.pending) > 0 {
		if sig.Cancelled() {
			return
		}
		p := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		l, r := s.Rewrite(p.LHS), s.Rewrite(p.RHS)
		if l == r {
			continue
		}
		if !s.order(l, r) {
			l, r = r, l
		}
		s.activate(l, r)
	}
}

func (s *System) activate(l, r string) {
	s.rules = append(s.rules, rule{lhs: l, rhs: r, active: true})
	s.nrActive++

	for i := 0; i < len(s.rules)-1; i++ {
		t := &s.rules[i]
		if !t.active {
			continue
		}
		if strings.Contains(t.lhs, l) {
			s.deactivate(i)
			s.pending = append(s.pending, Rule{LHS: t.lhs, RHS: t.rhs})
		} else if strings.Contains(t.rhs, l) {
			t.rhs = s.Rewrite(t.rhs)
		}
	}
}

func (s *System) deactivate(i int) {
	s.rules[i].active = false
	s.nrActive--
}

// Dump returns a stable textual encoding of the active rules, one per line,
// with words as space-separated decimal letters and "e" for the empty word.
func (s *System) Dump() string {
	var b strings.Builder
	for _, r := range s.rules {
		if !r.active {
			continue
		}
		b.WriteString(formatWord(r.lhs))
		b.WriteString(" -> ")
		b.WriteString(formatWord(r.rhs))
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseDump decodes the output of Dump.
func ParseDump(text string) ([]Rule, error) {
	var rules []Rule
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sides := strings.Split(line, " -> ")
		if len(sides) != 2 {
			return nil, fmt.Errorf("kb: bad rule line %q", line)
		}
		lhs, err := parseWord(sides[0])
		if err != nil {
			return nil, err
		}
		rhs, err := parseWord(sides[1])
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{LHS: lhs, RHS: rhs})
	}
	return rules, nil
}
