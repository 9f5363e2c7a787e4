// Package sudoku encodes 9x9 sudoku grids as CNF formulas and decodes solver
// models back into solved grids.
package sudoku

import (
	"strconv"
	"strings"

	"github.com/Shr1ram741/Sudoku-SAT-Solver/solver"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// A Grid is a 9x9 sudoku grid. 0 means the cell is empty.
type Grid [9][9]int

// varnum maps (row, col, digit), all in 1..9, to the SAT variable 1..729.
func varnum(r, c, d int) int {
	return 81*(r-1) + 9*(c-1) + d
}

// Parse reads a grid from its textual form: 81 cells in row order, where a
// digit is a given and '0' or '.' an empty cell. Whitespace is ignored.
func Parse(input string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range input {
		switch {
		case r == '.' || (r >= '0' && r <= '9'):
			if i == 81 {
				return Grid{}, errors.New("too many cells: a grid has exactly 81")
			}
			if r != '.' {
				g[i/9][i%9] = int(r - '0')
			}
			i++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return Grid{}, errors.Errorf("invalid character %q in grid", r)
		}
	}
	if i != 81 {
		return Grid{}, errors.Errorf("too few cells: got %d, expected 81", i)
	}
	return g, nil
}

// atMostOne appends the pairwise clauses stating that at most one of the given
// variables is true.
func atMostOne(clauses [][]int, vars []int) [][]int {
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			clauses = append(clauses, []int{-vars[i], -vars[j]})
		}
	}
	return clauses
}

// Encode translates the grid into a CNF problem over the variables
// varnum(r, c, d): each cell holds exactly one digit, each digit appears at
// most once per row, column and 3x3 block, and each given is a unit clause.
func Encode(g Grid) (*solver.Problem, error) {
	var clauses [][]int
	// Each cell holds at least one digit, and at most one.
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			cell := make([]int, 9)
			for d := 1; d <= 9; d++ {
				cell[d-1] = varnum(r, c, d)
			}
			clauses = append(clauses, cell)
			clauses = atMostOne(clauses, cell)
		}
	}
	// Each digit appears at most once per row and per column. Together with
	// the cell constraints this forces exactly once.
	for d := 1; d <= 9; d++ {
		for i := 1; i <= 9; i++ {
			row := make([]int, 9)
			col := make([]int, 9)
			for j := 1; j <= 9; j++ {
				row[j-1] = varnum(i, j, d)
				col[j-1] = varnum(j, i, d)
			}
			clauses = atMostOne(clauses, row)
			clauses = atMostOne(clauses, col)
		}
	}
	// Each digit appears at most once per 3x3 block.
	for d := 1; d <= 9; d++ {
		for br := 0; br < 3; br++ {
			for bc := 0; bc < 3; bc++ {
				block := make([]int, 0, 9)
				for r := br*3 + 1; r <= br*3+3; r++ {
					for c := bc*3 + 1; c <= bc*3+3; c++ {
						block = append(block, varnum(r, c, d))
					}
				}
				clauses = atMostOne(clauses, block)
			}
		}
	}
	// Givens.
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			d := g[r-1][c-1]
			if d < 0 || d > 9 {
				return nil, errors.Errorf("invalid digit %d at row %d, col %d", d, r, c)
			}
			if d != 0 {
				clauses = append(clauses, []int{varnum(r, c, d)})
			}
		}
	}
	return solver.ParseSlice(clauses)
}

// Decode rebuilds the solved grid from a model over the encoding's variables.
func Decode(model []bool) Grid {
	var g Grid
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			for d := 1; d <= 9; d++ {
				if model[varnum(r, c, d)-1] {
					g[r-1][c-1] = d
					break
				}
			}
		}
	}
	return g
}

// Solve solves the puzzle and returns the completed grid.
// It returns an error if the givens admit no solution.
func Solve(g Grid) (Grid, error) {
	pb, err := Encode(g)
	if err != nil {
		return Grid{}, err
	}
	s := solver.New(pb)
	if status := s.Solve(); status != solver.Sat {
		return Grid{}, errors.New("the puzzle has no solution")
	}
	return Decode(s.Model()), nil
}

// String renders the grid in the same textual form Parse reads, one row per
// line, with '.' for empty cells.
func (g Grid) String() string {
	rows := lo.Map(g[:], func(row [9]int, _ int) string {
		cells := lo.Map(row[:], func(d int, _ int) string {
			if d == 0 {
				return "."
			}
			return strconv.Itoa(d)
		})
		return strings.Join(cells, "")
	})
	return strings.Join(rows, "\n")
}
