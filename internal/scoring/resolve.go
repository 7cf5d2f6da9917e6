package scoring

import (
	"strings"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
)

// Winner returns the letter of axis a with the greater total. Ties go to the
// axis's first letter (E, S, T, J, A, C).
func Winner(acc Accumulator, a bank.Axis) bank.Letter {
	if acc[a.First()] >= acc[a.Second()] {
		return a.First()
	}
	return a.Second()
}

// Resolve derives the 4-letter MBTI code and the 2-letter charm code.
func Resolve(acc Accumulator) (mbti, charm string) {
	return code(acc, bank.MBTIAxes[:]), code(acc, bank.CharmAxes[:])
}

func code(acc Accumulator, axes []bank.Axis) string {
	var b strings.Builder
	b.Grow(len(axes))
	for _, a := range axes {
		b.WriteString(Winner(acc, a).String())
	}
	return b.String()
}
