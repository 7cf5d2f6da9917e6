package bank

import (
	"fmt"
	"strings"
)

// Letter is one of the twelve trait letters. Letters are laid out in axis
// pairs, so a letter's opposite differs only in the lowest bit.
type Letter uint8

const (
	E Letter = iota
	I
	S
	N
	T
	F
	J
	P
	A
	B
	C
	D
)

// NumLetters is the size of the closed letter alphabet.
const NumLetters = 12

const letterSymbols = "EISNTFJPABCD"

func (l Letter) String() string {
	if int(l) >= NumLetters {
		return fmt.Sprintf("Letter(%d)", uint8(l))
	}
	return letterSymbols[l : l+1]
}

// Valid reports whether l is inside the alphabet.
func (l Letter) Valid() bool { return int(l) < NumLetters }

// Opposite returns the other letter of l's axis.
func (l Letter) Opposite() Letter { return l ^ 1 }

// Axis returns the axis l belongs to.
func (l Letter) Axis() Axis { return Axis(l / 2) }

// ParseLetter maps a one-character symbol such as "E" or "c" to its Letter.
func ParseLetter(s string) (Letter, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	idx := strings.IndexByte(letterSymbols, strings.ToUpper(s)[0])
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	return Letter(idx), nil
}

// Axis is one of the six binary trait dimensions.
type Axis uint8

const (
	EI Axis = iota
	SN
	TF
	JP
	AB
	CD
)

// NumAxes is the number of binary axes.
const NumAxes = 6

var (
	// Axes lists every axis in canonical order.
	Axes = [NumAxes]Axis{EI, SN, TF, JP, AB, CD}
	// MBTIAxes are concatenated in this order to form the 4-letter type.
	MBTIAxes = [4]Axis{EI, SN, TF, JP}
	// CharmAxes are concatenated in this order to form the 2-letter charm type.
	CharmAxes = [2]Axis{AB, CD}
)

// First is the canonically earlier letter, which also wins ties.
func (a Axis) First() Letter { return Letter(2 * a) }

// Second is the other letter of the axis.
func (a Axis) Second() Letter { return Letter(2*a + 1) }

// Letters returns both letters, first then second.
func (a Axis) Letters() [2]Letter { return [2]Letter{a.First(), a.Second()} }

func (a Axis) String() string {
	if int(a) >= NumAxes {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return a.First().String() + a.Second().String()
}

// ParseAxis maps a two-letter name such as "EI" to its Axis.
func ParseAxis(s string) (Axis, error) {
	for _, a := range Axes {
		if strings.EqualFold(a.String(), s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// TagSet is a bitmask of letters a statement contributes to.
type TagSet uint16

// Tags builds a TagSet from letters.
func Tags(letters ...Letter) TagSet {
	var t TagSet
	for _, l := range letters {
		t = t.Add(l)
	}
	return t
}

func (t TagSet) Add(l Letter) TagSet { return t | 1<<l }

func (t TagSet) Has(l Letter) bool { return t&(1<<l) != 0 }

func (t TagSet) Empty() bool { return t == 0 }

// HasAxis reports whether either letter of a is tagged.
func (t TagSet) HasAxis(a Axis) bool { return t.Has(a.First()) || t.Has(a.Second()) }

// Letters returns the tagged letters in alphabet order.
func (t TagSet) Letters() []Letter {
	out := make([]Letter, 0, 2)
	for l := Letter(0); l < NumLetters; l++ {
		if t.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

// Conflicts returns the axes on which both letters are tagged.
func (t TagSet) Conflicts() []Axis {
	var out []Axis
	for _, a := range Axes {
		if t.Has(a.First()) && t.Has(a.Second()) {
			out = append(out, a)
		}
	}
	return out
}

func (t TagSet) String() string {
	var b strings.Builder
	for _, l := range t.Letters() {
		b.WriteString(l.String())
	}
	return b.String()
}

// MarshalYAML writes the set as a list of letter symbols.
func (t TagSet) MarshalYAML() (interface{}, error) {
	out := make([]string, 0, 2)
	for _, l := range t.Letters() {
		out = append(out, l.String())
	}
	return out, nil
}
