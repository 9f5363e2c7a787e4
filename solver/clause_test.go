package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseCNF(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(3)})
	assert.Equal(t, "1 -2 3 0", c.CNF())
	assert.False(t, c.Learned())
	learned := NewLearnedClause([]Lit{IntToLit(-1)})
	assert.Equal(t, "-1 0", learned.CNF())
	assert.True(t, learned.Learned())
}

func TestLitConversions(t *testing.T) {
	for _, i := range []int{1, -1, 3, -3, 42, -42} {
		assert.Equal(t, int32(i), IntToLit(i).Int())
	}
	assert.Equal(t, IntToLit(-3), IntToLit(3).Negation())
	assert.Equal(t, IntToLit(3), IntToLit(-3).Negation())
	assert.True(t, IntToLit(2).IsPositive())
	assert.False(t, IntToLit(-2).IsPositive())
	assert.Equal(t, Var(1), IntToLit(2).Var())
	assert.Equal(t, Var(1), IntToLit(-2).Var())
}
