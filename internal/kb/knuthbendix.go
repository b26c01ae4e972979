package kb

import "github.com/petrijr/fpsemi/pkg/api"

// KnuthBendix runs completion: it resolves every overlap (critical pair)
// between active rules, orienting and adding the rules this derives, until no
// unresolved pair remains or sig is cancelled. The signal is polled between
// rule derivations, so cancellation is prompt but an in-flight derivation
// always finishes.
//
// For some presentations completion never terminates; that is intrinsic to
// the problem, not a defect. On a cancelled run the system is left
// non-confluent and can be resumed by calling KnuthBendix again.
func (s *System) KnuthBendix(sig *api.Signal) {
	if s.IsConfluent() {
		return
	}
	s.resolvePending(sig)

	// Rules appended during the loop extend it: every ordered pair of rules
	// that are still active when the loop finishes has had its overlaps
	// examined in both directions.
	for i := 0; i < len(s.rules); i++ {
		if !s.rules[i].active {
			continue
		}
		for j := 0; j <= i; j++ {
			if sig.Cancelled() {
				return
			}
			if !s.rules[i].active {
				break
			}
			if !s.rules[j].active {
				continue
			}
			s.overlap(i, j, sig)
			if i != j && s.rules[i].active && s.rules[j].active {
				s.overlap(j, i, sig)
			}
		}
	}
	if sig.Cancelled() || len(s.pending) > 0 {
		return
	}
	s.confluent = true
	s.known = true
	s.Compress()
}

// overlap derives the critical pairs where a proper suffix of rule i's
// left-hand side is a prefix of rule j's, and resolves each immediately.
// Containment overlaps cannot occur: interreduction keeps active left-hand
// sides free of one another.
func (s *System) overlap(i, j int, sig *api.Signal) {
	li, ri := s.rules[i].lhs, s.rules[i].rhs
	lj, rj := s.rules[j].lhs, s.rules[j].rhs

	m := len(li)
	if len(lj) < m {
		m = len(lj)
	}
	for k := 1; k < m; k++ {
		if sig.Cancelled() {
			return
		}
		if li[len(li)-k:] != lj[:k] {
			continue
		}
		// The word li + lj[k:] rewrites two ways; the results must agree.
		s.pending = append(s.pending, Rule{
			LHS: ri + lj[k:],
			RHS: li[:len(li)-k] + rj,
		})
		s.resolvePending(sig)
		if !s.rules[i].active || !s.rules[j].active {
			return
		}
		// Left-hand sides are fixed while a rule is active, but
		// interreduction may have rewritten the right-hand sides.
		ri = s.rules[i].rhs
		rj = s.rules[j].rhs
	}
}
