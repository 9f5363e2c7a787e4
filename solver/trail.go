package solver

import "fmt"

// This file deals with the trail: the ordered list of literals currently
// assigned true, together with the per-variable metadata (value, decision
// level, reason) from which the implication graph is reconstructed on demand.

// assignLit makes lit true, records the current decision level and the given
// reason for it, and appends lit to the trail.
// Binding an already-bound variable means propagation went wrong: this is an
// invariant violation, not a recoverable state.
func (s *Solver) assignLit(lit Lit, from CID) {
	v := lit.Var()
	if s.assign[v] != 0 {
		panic(fmt.Sprintf("assigning already-bound variable %d", v+1))
	}
	if lit.IsPositive() {
		s.assign[v] = 1
	} else {
		s.assign[v] = -1
	}
	s.level[v] = int32(s.decisionLevel())
	s.reason[v] = from
	s.trail = append(s.trail, lit)
}

// decisionLevel returns the current decision level. Level 0 is the
// pre-decision root.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// newDecisionLevel opens a new decision level, recording the current trail
// length as its boundary.
func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

// undoTo unbinds all variables bound at a level higher than lvl, pops them
// from the trail and truncates the decision level markers. Unbound variables
// are given back to the branching queue.
func (s *Solver) undoTo(lvl int) {
	i := len(s.trail)
	for i > 0 {
		v := s.trail[i-1].Var()
		if int(s.level[v]) <= lvl {
			break
		}
		s.assign[v] = 0
		s.level[v] = -1
		s.reason[v] = noReason
		if !s.varQueue.contains(int(v)) {
			s.varQueue.insert(int(v))
		}
		i--
	}
	s.trail = s.trail[:i]
	s.trailLim = s.trailLim[:lvl]
	s.qhead = len(s.trail)
}

// litStatus returns whether the literal is made true (Sat) or false (Unsat) by
// the current bindings, or if it is unbounded (Indet).
func (s *Solver) litStatus(l Lit) Status {
	assign := s.assign[l.Var()]
	if assign == 0 {
		return Indet
	}
	if assign > 0 == l.IsPositive() {
		return Sat
	}
	return Unsat
}
