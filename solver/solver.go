package solver

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbConflicts     int
	NbDecisions     int
	NbUnitLearned   int // How many unit clauses were learned
	NbBinaryLearned int // How many binary clauses were learned
	NbLearned       int // How many clauses were learned
}

// A Solver solves a given problem. It is the main data structure.
type Solver struct {
	Verbose      bool // Indicates whether the solver should log information during solving. False by default
	MaxConflicts int  // Conflict budget; <= 0 means no budget. When exhausted, Solve returns Indet.
	nbVars       int
	status       Status
	wl           watcherList
	trail        []Lit   // Current assignment stack
	trailLim     []int   // Trail length at the start of each decision level
	qhead        int     // Trail position up to which propagation was performed
	assign       []int8  // For each var, 0 if unbound, 1 if true, -1 if false
	level        []int32 // For each var, the level it was bound at; -1 if unbound
	reason       []CID   // For each var, the clause that bound it; noReason for decisions & unbound vars
	activity     []float64
	varInc       float64 // On each var bump, how big the increment should be
	varQueue     queue
	wbuf         []CID // Reusable buffer for the watcher snapshot during propagation
	Stats        Stats // Statistics about the solving process.
}

// New makes a solver, given a problem.
// Unit clauses from the problem are bound immediately, at level 0; if two of
// them disagree, or if the problem contains an empty clause, the returned
// solver is already in the Unsat state.
func New(pb *Problem) *Solver {
	if pb.Status == Unsat {
		return &Solver{status: Unsat}
	}
	nbVars := pb.NbVars
	s := &Solver{
		status:   Indet,
		nbVars:   nbVars,
		trail:    make([]Lit, 0, nbVars),
		assign:   make([]int8, nbVars),
		level:    make([]int32, nbVars),
		reason:   make([]CID, nbVars),
		activity: make([]float64, nbVars),
		varInc:   1.0,
	}
	for i := 0; i < nbVars; i++ {
		s.level[i] = -1
		s.reason[i] = noReason
	}
	s.initWatcherList(pb.Clauses)
	s.varQueue = newQueue(s.activity)
	for i, c := range pb.Clauses {
		switch c.Len() {
		case 0:
			s.status = Unsat
			return s
		case 1:
			lit := c.First()
			switch s.litStatus(lit) {
			case Indet:
				s.assignLit(lit, CID(i))
			case Unsat: // Two unit clauses disagree
				s.status = Unsat
				return s
			}
		}
	}
	return s
}

// NbClauses returns the current number of clauses in the solver's store,
// learned clauses included. It can only grow during a solve.
func (s *Solver) NbClauses() int {
	return s.wl.nbClauses()
}

// Solve solves the problem associated with the solver and returns the
// appropriate status: Sat, Unsat, or Indet if the conflict budget was
// exhausted before a verdict was reached.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	for {
		if confl := s.propagate(); confl != noReason {
			s.Stats.NbConflicts++
			if s.decisionLevel() == 0 {
				s.status = Unsat
				return s.status
			}
			learned, btLevel := s.learnClause(confl)
			cid := s.addLearned(learned)
			s.undoTo(btLevel)
			s.assignLit(learned[0], cid)
			if s.Verbose && s.Stats.NbConflicts%5000 == 0 {
				log.WithFields(log.Fields{
					"conflicts": s.Stats.NbConflicts,
					"decisions": s.Stats.NbDecisions,
					"learned":   s.Stats.NbLearned,
					"trail":     len(s.trail),
				}).Info("search progress")
			}
			if s.MaxConflicts > 0 && s.Stats.NbConflicts >= s.MaxConflicts {
				return Indet // Budget exhausted: no verdict
			}
		} else {
			lit := s.chooseLit()
			if lit == -1 {
				s.status = Sat
				return s.status
			}
			s.Stats.NbDecisions++
			s.newDecisionLevel()
			s.assignLit(lit, noReason)
		}
	}
}

// chooseLit returns the literal to branch on: the unbound variable with the
// highest activity, ties broken by the smallest index, always positive.
// It returns -1 if all the variables are already bound.
func (s *Solver) chooseLit() Lit {
	v := Var(-1)
	for v == -1 && !s.varQueue.empty() {
		if v2 := Var(s.varQueue.removeMin()); s.assign[v2] == 0 { // Ignore already bound vars
			v = v2
		}
	}
	if v == -1 {
		return Lit(-1)
	}
	return v.Lit() // Always branch positive: phase saving is out of scope
}

// Model returns a slice that associates, to each variable, its binding.
// If s's status is not Sat, the method will panic.
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("cannot call Model() from a non-Sat solver")
	}
	res := make([]bool, s.nbVars)
	for i, assign := range s.assign {
		res[i] = assign > 0
	}
	return res
}

// OutputModel outputs the result, and the model if any, on stdout, in the
// DIMACS solution format.
func (s *Solver) OutputModel() {
	switch s.status {
	case Sat:
		fmt.Printf("s SATISFIABLE\nv ")
		for i, assign := range s.assign {
			if assign < 0 {
				fmt.Printf("%d ", -i-1)
			} else {
				fmt.Printf("%d ", i+1)
			}
		}
		fmt.Printf("0\n")
	case Unsat:
		fmt.Printf("s UNSATISFIABLE\n")
	default:
		fmt.Printf("s INDETERMINATE\n")
	}
}
