package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads an int from r.
// 'b' is the last read byte. It can be a space, a '-' or a digit.
// The int can be negated.
// All spaces before the int value are ignored.
// Can return EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, errors.Wrap(err, "could not read digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "cannot read int")
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, errors.Errorf("invalid syntax %q in header", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Errorf("nbvars not an int : %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Errorf("nbClauses not an int : %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream and returns the corresponding Problem.
// Lines starting with 'c' are comments, the 'p' line is the header.
// A clause is a sequence of whitespace-separated literals ending with 0 and may
// span several lines. The header's variable count is advisory only: the actual
// count is the maximum absolute literal value found in the clauses.
func ParseCNF(f io.Reader) (*Problem, error) {
	r := bufio.NewReader(f)
	var pb Problem
	b, err := r.ReadByte()
	for err == nil {
		if b == 'c' { // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		} else if b == 'p' { // Parse header
			var nbClauses int
			_, nbClauses, err = parseHeader(r)
			if err != nil {
				return nil, errors.Wrap(err, "cannot parse CNF header")
			}
			pb.Clauses = make([]*Clause, 0, nbClauses)
		} else {
			lits := make([]Lit, 0, 3) // Make room for some lits to improve performance
			for {
				var errSkip error
				for errSkip == nil && isSpace(b) {
					b, errSkip = r.ReadByte()
				}
				if errSkip == io.EOF {
					if len(lits) == 0 {
						break // Only useless spaces at the end of the file, that is ok
					}
					return nil, errors.New("unfinished clause while EOF found")
				}
				if errSkip != nil {
					return nil, errors.Wrap(errSkip, "cannot parse clause")
				}
				val, errInt := readInt(&b, r)
				if errInt != nil && errInt != io.EOF {
					return nil, errors.Wrap(errInt, "cannot parse clause")
				}
				if val == 0 {
					if len(lits) == 0 { // Empty clause: the problem is trivially unsatisfiable
						pb.Status = Unsat
					}
					pb.Clauses = append(pb.Clauses, NewClause(lits))
					break
				}
				lit := IntToLit(val)
				if v := int(lit.Var()); v >= pb.NbVars {
					pb.NbVars = v + 1
				}
				lits = append(lits, lit)
				if errInt == io.EOF { // This is not a trailing space at the end...
					return nil, errors.New("unfinished clause while EOF found")
				}
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	return &pb, nil
}
