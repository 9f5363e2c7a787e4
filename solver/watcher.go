package solver

// A watcher links a binary clause to the literal that will be propagated when
// the watching literal becomes false.
type watcher struct {
	other Lit // The other lit from the clause
	cid   CID
}

// A watcherList is a structure used to store clauses and propagate unit
// literals efficiently. It is the solver's clause store: clauses are indexed
// by their CID and are only ever appended.
type watcherList struct {
	nbOriginal int         // Original # of clauses
	wlistBin   [][]watcher // For each literal, a list of binary clauses where its negation appears
	wlist      [][]CID     // For each literal, a list of other clauses watched by its negation
	clauses    []*Clause   // All the clauses, dense, keyed by CID
}

// initWatcherList makes a new watcherList for the solver.
func (s *Solver) initWatcherList(clauses []*Clause) {
	newClauses := make([]*Clause, len(clauses), len(clauses)*2) // Make room for future learned clauses
	copy(newClauses, clauses)
	s.wl = watcherList{
		nbOriginal: len(clauses),
		wlistBin:   make([][]watcher, s.nbVars*2),
		wlist:      make([][]CID, s.nbVars*2),
		clauses:    newClauses,
	}
	for i, c := range newClauses {
		if c.Len() > 0 {
			s.watchClause(c, CID(i))
		}
	}
}

// get returns the clause associated with the given identifier.
func (wl *watcherList) get(cid CID) *Clause {
	return wl.clauses[cid]
}

// nbClauses returns the total number of clauses in the store.
func (wl *watcherList) nbClauses() int {
	return len(wl.clauses)
}

// Watches the provided clause. Clauses of length >= 2 are watched by their
// first two literals; a unit clause is watched by its single literal, twice.
func (s *Solver) watchClause(c *Clause, cid CID) {
	switch c.Len() {
	case 1:
		neg := c.First().Negation()
		s.wl.wlist[neg] = append(s.wl.wlist[neg], cid, cid)
	case 2:
		first := c.First()
		second := c.Second()
		neg0 := first.Negation()
		neg1 := second.Negation()
		s.wl.wlistBin[neg0] = append(s.wl.wlistBin[neg0], watcher{cid: cid, other: second})
		s.wl.wlistBin[neg1] = append(s.wl.wlistBin[neg1], watcher{cid: cid, other: first})
	default:
		neg0 := c.First().Negation()
		neg1 := c.Second().Negation()
		s.wl.wlist[neg0] = append(s.wl.wlist[neg0], cid)
		s.wl.wlist[neg1] = append(s.wl.wlist[neg1], cid)
	}
}

// watchLit makes the given clause watched by lit.
func (s *Solver) watchLit(lit Lit, cid CID) {
	neg := lit.Negation()
	s.wl.wlist[neg] = append(s.wl.wlist[neg], cid)
}

// unwatchLit removes one watch of the given clause by lit.
// The clause *must* currently be watched by lit.
func (s *Solver) unwatchLit(lit Lit, cid CID) {
	neg := lit.Negation()
	lst := s.wl.wlist[neg]
	i := 0
	for lst[i] != cid {
		i++
	}
	last := len(lst) - 1
	lst[i] = lst[last]
	s.wl.wlist[neg] = lst[:last]
}

// addLearned appends a learned clause to the store and installs its watches.
// It returns the clause's identifier.
func (s *Solver) addLearned(lits []Lit) CID {
	c := NewLearnedClause(lits)
	cid := CID(len(s.wl.clauses))
	s.wl.clauses = append(s.wl.clauses, c)
	s.watchClause(c, cid)
	s.Stats.NbLearned++
	switch c.Len() {
	case 1:
		s.Stats.NbUnitLearned++
	case 2:
		s.Stats.NbBinaryLearned++
	}
	return cid
}

// propagate processes all trail literals that were not examined yet and runs
// unit propagation to fixpoint. It returns the identifier of a conflicting
// clause, or noReason if no clause was falsified. After a noReason return,
// every clause is either satisfied or has at least two unassigned literals.
func (s *Solver) propagate() CID {
	for s.qhead < len(s.trail) {
		lit := s.trail[s.qhead] // lit just became true; clauses watching its negation may need inspection
		s.qhead++
		for _, w := range s.wl.wlistBin[lit] {
			v2 := w.other.Var()
			if assign := s.assign[v2]; assign == 0 {
				s.assignLit(w.other, w.cid)
			} else if (assign > 0) != w.other.IsPositive() {
				return w.cid
			}
		}
		// Iterate over a snapshot: simplifyClause migrates watches, which
		// mutates the list being walked.
		s.wbuf = append(s.wbuf[:0], s.wl.wlist[lit]...)
		for _, cid := range s.wbuf {
			res, unit := s.simplifyClause(cid)
			switch res {
			case Unsat:
				return cid
			case Unit:
				s.assignLit(unit, cid)
			}
		}
	}
	return noReason
}

// simplifyClause inspects the given clause under the current bindings.
// It returns a new status, and a potential unit literal:
// Sat if some literal is true, Unsat if all literals are false,
// Unit (plus the literal) if exactly one literal is unbound, and Many after
// migrating the watches to two unbound literals otherwise.
func (s *Solver) simplifyClause(cid CID) (Status, Lit) {
	c := s.wl.get(cid)
	var freeIdx int // Index of the first free lit found, if any
	found := false
	length := c.Len()
	for i := 0; i < length; i++ {
		lit := c.Get(i)
		if assign := s.assign[lit.Var()]; assign == 0 {
			if found {
				// 2 lits are known to be unbounded: watch them
				s.migrateWatches(c, cid, freeIdx, i)
				return Many, -1
			}
			freeIdx = i
			found = true
		} else if (assign > 0) == lit.IsPositive() {
			return Sat, -1
		}
	}
	if !found {
		return Unsat, -1
	}
	return Unit, c.Get(freeIdx)
}

// migrateWatches moves the clause's watches to the unbound literals at
// positions free1 < free2, swapping them into the watched positions and
// updating the watcher lists accordingly.
func (s *Solver) migrateWatches(c *Clause, cid CID, free1, free2 int) {
	switch {
	case free1 == 0 && free2 == 1: // Both watches are already unbound
	case free1 == 0: // c[0] stays watched, c[1] is replaced
		s.unwatchLit(c.Second(), cid)
		c.swap(free2, 1)
		s.watchLit(c.Second(), cid)
	case free1 == 1: // c[1] stays watched, c[0] is replaced
		s.unwatchLit(c.First(), cid)
		c.swap(free2, 0)
		s.watchLit(c.First(), cid)
	default: // Both c[0] & c[1] are replaced
		s.unwatchLit(c.First(), cid)
		s.unwatchLit(c.Second(), cid)
		c.swap(free1, 0)
		c.swap(free2, 1)
		s.watchLit(c.First(), cid)
		s.watchLit(c.Second(), cid)
	}
}
