package solver

import "fmt"

// Conflict analysis: resolution from a conflicting clause back to the first
// unique implication point, yielding an asserting learned clause and the
// level to backjump to.

// varBumpActivity raises v's activity. All activities are rescaled when one
// of them grows too big, to avoid overflowing.
func (s *Solver) varBumpActivity(v Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	if s.varQueue.contains(int(v)) {
		s.varQueue.decrease(int(v))
	}
}

// learnClause analyzes the conflict described by the given clause and returns
// an asserting clause together with the level to backjump to.
// The asserting literal is put first; the remaining literals are sorted by
// decreasing level, so that the second literal sits at the backjump level and
// the first two literals are valid watches once the backjump is done.
// Must only be called when the current decision level is > 0.
func (s *Solver) learnClause(confl CID) (lits []Lit, btLevel int) {
	lvl := int32(s.decisionLevel())
	seen := make([]bool, s.nbVars)
	lits = []Lit{-1} // Room for the asserting literal
	counter := 0     // Nb of lits from the current level not resolved yet
	c := s.wl.get(confl)
	for i := 0; i < c.Len(); i++ {
		l := c.Get(i)
		v := l.Var()
		if seen[v] {
			continue
		}
		seen[v] = true
		s.varBumpActivity(v)
		if s.level[v] == lvl {
			counter++
		} else if s.level[v] > 0 {
			lits = append(lits, l)
		}
	}
	if counter == 0 {
		panic("conflict clause without current-level literal")
	}
	// Walk the trail backwards, resolving current-level literals with their
	// antecedents until a single one remains: the first UIP.
	limit := s.trailLim[lvl-1] // The UIP cannot sit below the last decision
	ptr := len(s.trail) - 1
	for {
		for {
			if ptr < limit {
				panic("no UIP found above the last decision")
			}
			if v := s.trail[ptr].Var(); seen[v] && s.level[v] == lvl {
				break
			}
			ptr--
		}
		lit := s.trail[ptr]
		if counter == 1 {
			lits[0] = lit.Negation()
			break
		}
		v := lit.Var()
		ptr--
		counter--
		from := s.reason[v]
		if from == noReason {
			panic(fmt.Sprintf("resolving on decision variable %d before the UIP", v+1))
		}
		reason := s.wl.get(from)
		for i := 0; i < reason.Len(); i++ {
			m := reason.Get(i)
			v2 := m.Var()
			if v2 == v || seen[v2] {
				continue
			}
			seen[v2] = true
			s.varBumpActivity(v2)
			if s.level[v2] == lvl {
				counter++
			} else if s.level[v2] > 0 {
				lits = append(lits, m)
			}
		}
	}
	sortLiterals(lits, s.level)
	if len(lits) == 1 {
		return lits, 0
	}
	return lits, int(s.level[lits[1].Var()])
}
