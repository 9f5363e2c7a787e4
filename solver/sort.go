package solver

import "sort"

// clauseSorter is a structure to facilitate the sorting of lits in a learned clause
// according to their respective decision levels.
type clauseSorter struct {
	lits  []Lit
	level []int32
}

func (cs *clauseSorter) Len() int { return len(cs.lits) }
func (cs *clauseSorter) Less(i, j int) bool {
	return cs.level[cs.lits[i].Var()] > cs.level[cs.lits[j].Var()]
}
func (cs *clauseSorter) Swap(i, j int) { cs.lits[i], cs.lits[j] = cs.lits[j], cs.lits[i] }

// sortLiterals sorts the literals by decreasing decision level,
// i.e. level[lits[i]] >= level[lits[i+1]].
func sortLiterals(lits []Lit, level []int32) {
	cs := &clauseSorter{lits, level}
	sort.Sort(cs)
}
