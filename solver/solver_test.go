package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solveSlice(t *testing.T, cnf [][]int) *Solver {
	t.Helper()
	pb, err := ParseSlice(cnf)
	require.NoError(t, err)
	s := New(pb)
	s.Solve()
	return s
}

// verifyModel checks that the model makes at least one literal true in every
// clause of the input.
func verifyModel(t *testing.T, cnf [][]int, model []bool) {
	t.Helper()
	for _, clause := range cnf {
		ok := false
		for _, lit := range clause {
			if v := abs(lit) - 1; model[v] == (lit > 0) {
				ok = true
				break
			}
		}
		require.True(t, ok, "clause %v is falsified by model %v", clause, model)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func TestSolveUnitClause(t *testing.T) {
	s := solveSlice(t, [][]int{{1}})
	require.Equal(t, Sat, s.Solve())
	assert.True(t, s.Model()[0])
}

func TestSolveContradictoryUnits(t *testing.T) {
	s := solveSlice(t, [][]int{{1}, {-1}})
	assert.Equal(t, Unsat, s.Solve())
}

func TestSolveAllBinaryUnsat(t *testing.T) {
	s := solveSlice(t, [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}})
	assert.Equal(t, Unsat, s.Solve())
}

func TestSolveExactlyOne(t *testing.T) {
	cnf := [][]int{{1, 2, 3}, {-1, -2}, {-1, -3}, {-2, -3}}
	s := solveSlice(t, cnf)
	require.Equal(t, Sat, s.Solve())
	model := s.Model()
	verifyModel(t, cnf, model)
	nbTrue := 0
	for _, b := range model {
		if b {
			nbTrue++
		}
	}
	assert.Equal(t, 1, nbTrue, "exactly one of the three vars must be true")
}

func TestSolveImplicationChain(t *testing.T) {
	cnf := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	s := solveSlice(t, cnf)
	require.Equal(t, Sat, s.Solve())
	verifyModel(t, cnf, s.Model())
}

func TestSolveEmptyClause(t *testing.T) {
	pb, err := ParseSlice([][]int{{1, 2}, {}})
	require.NoError(t, err)
	require.Equal(t, Unsat, pb.Status)
	assert.Equal(t, Unsat, New(pb).Solve())
}

// pigeonhole builds the clauses stating that each of nbPigeons pigeons sits in
// one of nbHoles holes, no two pigeons sharing a hole.
func pigeonhole(nbPigeons, nbHoles int) [][]int {
	at := func(p, h int) int { return (p-1)*nbHoles + h }
	var cnf [][]int
	for p := 1; p <= nbPigeons; p++ {
		clause := make([]int, nbHoles)
		for h := 1; h <= nbHoles; h++ {
			clause[h-1] = at(p, h)
		}
		cnf = append(cnf, clause)
	}
	for h := 1; h <= nbHoles; h++ {
		for p1 := 1; p1 <= nbPigeons; p1++ {
			for p2 := p1 + 1; p2 <= nbPigeons; p2++ {
				cnf = append(cnf, []int{-at(p1, h), -at(p2, h)})
			}
		}
	}
	return cnf
}

func TestSolvePigeonhole(t *testing.T) {
	s := solveSlice(t, pigeonhole(3, 2))
	assert.Equal(t, Unsat, s.Solve())
	s = solveSlice(t, pigeonhole(4, 3))
	assert.Equal(t, Unsat, s.Solve())
	// With as many holes as pigeons the formula becomes satisfiable
	cnf := pigeonhole(4, 4)
	s = solveSlice(t, cnf)
	require.Equal(t, Sat, s.Solve())
	verifyModel(t, cnf, s.Model())
}

func TestConflictBudget(t *testing.T) {
	pb, err := ParseSlice(pigeonhole(5, 4))
	require.NoError(t, err)
	s := New(pb)
	s.MaxConflicts = 1
	assert.Equal(t, Indet, s.Solve())
	assert.Equal(t, 1, s.Stats.NbConflicts)
}

func TestMonotoneClauseCount(t *testing.T) {
	pb, err := ParseSlice(pigeonhole(4, 3))
	require.NoError(t, err)
	s := New(pb)
	before := s.NbClauses()
	s.Solve()
	assert.GreaterOrEqual(t, s.NbClauses(), before)
	assert.Equal(t, s.Stats.NbLearned, s.NbClauses()-before)
}

// randomCNF generates a random 3-CNF instance with nbVars variables at the
// phase-transition ratio of about 4.26 clauses per variable.
func randomCNF(rng *rand.Rand, nbVars int) [][]int {
	nbClauses := int(float64(nbVars) * 4.26)
	cnf := make([][]int, nbClauses)
	for i := range cnf {
		clause := make([]int, 3)
		for j := range clause {
			v := rng.Intn(nbVars) + 1
			if rng.Intn(2) == 0 {
				v = -v
			}
			clause[j] = v
		}
		cnf[i] = clause
	}
	return cnf
}

func TestSolveRandom3CNF(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	nbSat := 0
	for i := 0; i < 100; i++ {
		cnf := randomCNF(rng, 30)
		s := solveSlice(t, cnf)
		switch status := s.Solve(); status {
		case Sat:
			nbSat++
			verifyModel(t, cnf, s.Model())
		case Unsat:
		default:
			t.Fatalf("unexpected status %v without a budget", status)
		}
	}
	// At the phase transition both verdicts must show up
	assert.Positive(t, nbSat)
	assert.Less(t, nbSat, 100)
}

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		cnf := randomCNF(rng, 25)
		s1 := solveSlice(t, cnf)
		s2 := solveSlice(t, cnf)
		require.Equal(t, s1.Solve(), s2.Solve())
		if s1.Solve() == Sat {
			assert.Equal(t, s1.Model(), s2.Model())
		}
	}
}

func TestLearnedClauseIsAsserting(t *testing.T) {
	pb, err := ParseSlice([][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}})
	require.NoError(t, err)
	s := New(pb)
	require.Equal(t, noReason, s.propagate())
	s.newDecisionLevel()
	s.assignLit(IntToLit(1), noReason)
	confl := s.propagate()
	require.NotEqual(t, noReason, confl)
	learned, btLevel := s.learnClause(confl)
	// Exactly one literal of the learned clause sits at the conflict level
	nbCur := 0
	for _, l := range learned {
		if s.level[l.Var()] == int32(s.decisionLevel()) {
			nbCur++
		}
	}
	require.Equal(t, 1, nbCur)
	assert.Equal(t, int32(s.decisionLevel()), s.level[learned[0].Var()])
	// Deciding 1 here forces the conflict, so the first UIP is the decision
	// itself and the learned clause is the unit clause -1
	require.Equal(t, []Lit{IntToLit(-1)}, learned)
	assert.Equal(t, 0, btLevel)
}

func TestTrailLevelInvariant(t *testing.T) {
	cnf := [][]int{{1, 2, 3}, {-1, -2}, {-1, -3}, {-2, -3}, {3, 4}, {-4, 5}}
	s := solveSlice(t, cnf)
	require.Equal(t, Sat, s.Solve())
	for i, lit := range s.trail {
		nbMarkers := 0
		for _, lim := range s.trailLim {
			if lim <= i {
				nbMarkers++
			}
		}
		assert.Equal(t, int32(nbMarkers), s.level[lit.Var()],
			"level of trail literal %d does not match its position", lit.Int())
	}
	assert.Equal(t, len(s.trail), len(s.assign), "every variable must be assigned on Sat")
}

// checkWatchConsistency verifies that every clause of length >= 2 is watched
// by exactly two of its literals and that every watcher entry points back to a
// clause actually containing the watching literal.
func checkWatchConsistency(t *testing.T, s *Solver) {
	t.Helper()
	counts := make(map[CID]int)
	for li, lst := range s.wl.wlist {
		w := Lit(li).Negation() // The literal actually watching those clauses
		for _, cid := range lst {
			c := s.wl.get(cid)
			if c.Len() == 1 {
				require.Equal(t, w, c.First())
			} else {
				require.True(t, c.First() == w || c.Second() == w,
					"clause %s is listed under %d but watched by neither of its first two lits", c.CNF(), w.Int())
			}
			counts[cid]++
		}
	}
	for li, lst := range s.wl.wlistBin {
		w := Lit(li).Negation()
		for _, watch := range lst {
			c := s.wl.get(watch.cid)
			require.Equal(t, 2, c.Len())
			require.True(t, c.First() == w || c.Second() == w)
			counts[watch.cid]++
		}
	}
	for cid := 0; cid < s.wl.nbClauses(); cid++ {
		if s.wl.get(CID(cid)).Len() > 0 {
			require.Equal(t, 2, counts[CID(cid)], "clause %d must carry exactly two watches", cid)
		}
	}
}

func TestWatchConsistency(t *testing.T) {
	s := solveSlice(t, [][]int{{1, 2, 3}, {-1, -2}, {-1, -3}, {-2, -3}, {1, 2, 3, 4, 5}})
	checkWatchConsistency(t, s)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		s := solveSlice(t, randomCNF(rng, 20))
		checkWatchConsistency(t, s)
	}
}
