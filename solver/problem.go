package solver

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Problem is a list of clauses & a nb of vars.
type Problem struct {
	NbVars  int       // Total nb of vars
	Clauses []*Clause // All clauses from the input, in order. May contain empty and unit clauses.
	Status  Status    // Status of the problem. Unsat if an empty clause was found, Indet otherwise.
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses))
	for _, clause := range pb.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}

// ParseSlice parses a slice of slices of lits and returns the equivalent problem.
// A literal of value 0 is invalid anywhere but as the DIMACS clause terminator,
// which this representation omits, so it is rejected here.
func ParseSlice(cnf [][]int) (*Problem, error) {
	var pb Problem
	for i, line := range cnf {
		if len(line) == 0 {
			pb.Clauses = append(pb.Clauses, NewClause(nil))
			pb.Status = Unsat
			continue
		}
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				return nil, errors.Errorf("null literal in clause %d", i+1)
			}
			lits[j] = IntToLit(val)
			if v := int(lits[j].Var()); v >= pb.NbVars {
				pb.NbVars = v + 1
			}
		}
		pb.Clauses = append(pb.Clauses, NewClause(lits))
	}
	return &pb, nil
}
