package scoring

import (
	"math/rand/v2"
	"testing"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
)

func randomSheet(r *rand.Rand, n int) []int {
	answers := make([]int, n)
	for i := range answers {
		answers[i] = r.IntN(MaxAnswer-MinAnswer+1) + MinAnswer
	}
	return answers
}

func TestAxisSumAndRangeInvariants(t *testing.T) {
	e := NewEngine(bank.Default(), catalog.Default(), discardLogger())
	r := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{0, 1, 7, bank.ShortForm, bank.LongForm} {
		for run := 0; run < 200; run++ {
			res := e.Compute(randomSheet(r, n), n)
			for _, a := range bank.Axes {
				x, y := res.Percentages[a.First()], res.Percentages[a.Second()]
				if x+y != 100 {
					t.Fatalf("n=%d %s: %d+%d != 100", n, a, x, y)
				}
				if x < 0 || x > 100 || y < 0 || y > 100 {
					t.Fatalf("n=%d %s: out of range %d/%d", n, a, x, y)
				}
			}
			if len(res.MBTIType) != 4 || len(res.CharmType) != 2 {
				t.Fatalf("malformed codes %s-%s", res.MBTIType, res.CharmType)
			}
		}
	}
}

func TestOutOfRangeAnswersStayInRange(t *testing.T) {
	e := newTestEngine(eiBank()...)
	res := e.Compute([]int{50, -50}, 2)
	if res.Percentages[bank.E] != 100 || res.Percentages[bank.I] != 0 {
		t.Errorf("expected clamp to 100/0, got %d/%d", res.Percentages[bank.E], res.Percentages[bank.I])
	}
}

func TestMonotonicity(t *testing.T) {
	b := bank.Default()
	e := NewEngine(b, catalog.Default(), discardLogger())
	r := rand.New(rand.NewPCG(7, 11))

	for run := 0; run < 50; run++ {
		answers := randomSheet(r, bank.LongForm)
		idx := r.IntN(bank.LongForm)
		stmt, _ := b.At(idx)

		for answers[idx] < MaxAnswer {
			before := e.Compute(answers, bank.LongForm)
			answers[idx]++
			after := e.Compute(answers, bank.LongForm)

			for _, l := range stmt.Tags.Letters() {
				if after.Percentages[l] < before.Percentages[l] {
					t.Fatalf("statement %d letter %s: %d -> %d after raising answer to %d",
						idx, l, before.Percentages[l], after.Percentages[l], answers[idx])
				}
			}
		}
	}
}

func TestTieBreakDeterministic(t *testing.T) {
	e := NewEngine(bank.Default(), catalog.Default(), discardLogger())
	answers := make([]int, bank.ShortForm)

	for i := 0; i < 20; i++ {
		res := e.Compute(answers, bank.ShortForm)
		if res.MBTIType != "ESTJ" || res.CharmType != "AC" {
			t.Fatalf("run %d: expected ESTJ-AC, got %s", i, res.ShareCode())
		}
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		num, den, want int
	}{
		{0, 12, 0},
		{12, 12, 100},
		{1, 8, 13},  // 12.5 rounds up
		{3, 24, 13}, // 12.5 rounds up
		{7, 12, 58}, // 58.33
		{5, 6, 83},  // 83.33
		{1, 6, 17},  // 16.67
		{-1, 8, -13},
	}
	for _, tt := range tests {
		if got := roundPercent(tt.num, tt.den); got != tt.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestAccumulateSkipsSilently(t *testing.T) {
	stmts := []bank.Statement{bank.NewStatement("x", bank.J)}
	acc, skipped := Accumulate(stmts, []int{2, 3, -1})
	if acc[bank.J] != 2 || skipped != 2 {
		t.Errorf("expected J=2 skipped=2, got J=%d skipped=%d", acc[bank.J], skipped)
	}

	acc, skipped = Accumulate(nil, nil)
	if acc != (Accumulator{}) || skipped != 0 {
		t.Error("expected zero accumulator for empty input")
	}
}
