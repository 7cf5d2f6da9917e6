package scoring

// Answer bounds. Positive agrees with the statement's tagged direction.
const (
	MinAnswer = -3
	MaxAnswer = 3
)

// Step is one button of the answer scale.
type Step struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

var ladder = [...]Step{
	{Value: 3, Label: "매우 그렇다"},
	{Value: 2, Label: "중간 그렇다"},
	{Value: 1, Label: "조금 그렇다"},
	{Value: 0, Label: "잘 모르겠다"},
	{Value: -1, Label: "조금 아니다"},
	{Value: -2, Label: "중간 아니다"},
	{Value: -3, Label: "매우 아니다"},
}

// Ladder returns the seven answer steps from strongest agreement to
// strongest disagreement.
func Ladder() []Step {
	out := make([]Step, len(ladder))
	copy(out, ladder[:])
	return out
}

// ValidAnswer reports whether v is inside [MinAnswer, MaxAnswer].
func ValidAnswer(v int) bool {
	return v >= MinAnswer && v <= MaxAnswer
}
