package scoring

import (
	"encoding/json"
	"fmt"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
)

// Accumulator holds the running total per letter.
type Accumulator [bank.NumLetters]int

// Add credits answer to every letter in tags. A multi-tagged statement moves
// several unrelated totals at once.
func (a *Accumulator) Add(tags bank.TagSet, answer int) {
	for l := bank.Letter(0); l < bank.NumLetters; l++ {
		if tags.Has(l) {
			a[l] += answer
		}
	}
}

// Get returns the total for l.
func (a Accumulator) Get(l bank.Letter) int { return a[l] }

func (a Accumulator) MarshalJSON() ([]byte, error) {
	return marshalLetterValues(a)
}

func (a *Accumulator) UnmarshalJSON(data []byte) error {
	return unmarshalLetterValues(data, (*[bank.NumLetters]int)(a))
}

// Accumulate pairs answers with statements by position. Answers past the end
// of stmts have no statement and are skipped; skipped reports how many.
func Accumulate(stmts []bank.Statement, answers []int) (acc Accumulator, skipped int) {
	for i, answer := range answers {
		if i >= len(stmts) {
			skipped++
			continue
		}
		acc.Add(stmts[i].Tags, answer)
	}
	return acc, skipped
}

func marshalLetterValues(v [bank.NumLetters]int) ([]byte, error) {
	m := make(map[string]int, bank.NumLetters)
	for l := bank.Letter(0); l < bank.NumLetters; l++ {
		m[l.String()] = v[l]
	}
	return json.Marshal(m)
}

func unmarshalLetterValues(data []byte, dst *[bank.NumLetters]int) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, v := range m {
		l, err := bank.ParseLetter(k)
		if err != nil {
			return fmt.Errorf("letter values: %w", err)
		}
		dst[l] = v
	}
	return nil
}
