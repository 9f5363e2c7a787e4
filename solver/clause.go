package solver

import "fmt"

// A CID identifies a clause in the solver's store. Identifiers are dense
// nonnegative integers, assigned in insertion order, and stay valid for the
// whole solve: the store is append-only.
type CID int32

// noReason is used in place of a clause identifier when a variable was bound
// by a decision, or is not bound at all.
const noReason CID = -1

// A Clause is a list of Lit.
type Clause struct {
	lits    []Lit
	learned bool
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// NewLearnedClause returns a new clause marked as learned.
func NewLearnedClause(lits []Lit) *Clause {
	return &Clause{lits: lits, learned: true}
}

// Learned returns true iff c was a learned clause.
func (c *Clause) Learned() bool {
	return c.learned
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Second returns the second lit from the clause.
func (c *Clause) Second() Lit {
	return c.lits[1]
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// swap swaps the ith and jth lits from the clause.
func (c *Clause) swap(i, j int) {
	c.lits[i], c.lits[j] = c.lits[j], c.lits[i]
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}
