package scoring

import (
	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
)

// Percentages holds each letter's 0-100 share of its axis. For every axis
// the two letters sum to exactly 100.
type Percentages [bank.NumLetters]int

// Get returns the percentage for l.
func (p Percentages) Get(l bank.Letter) int { return p[l] }

func (p Percentages) MarshalJSON() ([]byte, error) {
	return marshalLetterValues(p)
}

func (p *Percentages) UnmarshalJSON(data []byte) error {
	return unmarshalLetterValues(data, (*[bank.NumLetters]int)(p))
}

// tally counts, in one pass, how many statements tag each letter and how
// many address each axis at all.
type tally struct {
	letters  [bank.NumLetters]int
	relevant [bank.NumAxes]int
}

func tallyStatements(stmts []bank.Statement) tally {
	var t tally
	for _, s := range stmts {
		for l := bank.Letter(0); l < bank.NumLetters; l++ {
			if s.Tags.Has(l) {
				t.letters[l]++
			}
		}
		for _, a := range bank.Axes {
			if s.Tags.HasAxis(a) {
				t.relevant[a]++
			}
		}
	}
	return t
}

// Normalize converts raw totals into per-axis percentage splits.
//
// For axis {X,Y} with nX and nY tagged statements the differential
// acc[X]-acc[Y] ranges over [-3(nX+nY), 3(nX+nY)]. It is shifted to start at
// zero and scaled onto 0-100; Y takes the remainder. An axis no statement
// addresses is 50/50.
func Normalize(stmts []bank.Statement, acc Accumulator) Percentages {
	t := tallyStatements(stmts)
	var p Percentages
	for _, a := range bank.Axes {
		x, y := a.First(), a.Second()
		p[x], p[y] = axisSplit(acc[x]-acc[y], t.letters[x], t.letters[y], t.relevant[a])
	}
	return p
}

func axisSplit(diff, nx, ny, relevant int) (first, second int) {
	if relevant == 0 {
		return 50, 50
	}
	span := (nx*MaxAnswer - nx*MinAnswer) + (ny*MaxAnswer - ny*MinAnswer)
	if span <= 0 {
		return 50, 50
	}
	shifted := diff - (nx*MinAnswer - ny*MaxAnswer)
	first = clampPercent(roundPercent(shifted, span))
	return first, 100 - first
}

// roundPercent returns num/den*100 rounded to the nearest integer with ties
// away from zero. Integer arithmetic keeps exact .5 boundaries exact.
func roundPercent(num, den int) int {
	n := num * 100
	if n < 0 {
		return -((-n*2 + den) / (2 * den))
	}
	return (n*2 + den) / (2 * den)
}

// clampPercent only matters for answers outside [-3, 3], which the engine
// accepts without validation.
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
