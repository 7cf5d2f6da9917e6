package events

import "github.com/MikeSquared-Agency/CharMTI/internal/bank"

const (
	SubjectPrefix = "charmti.result"
	// SubjectAllResults matches every result event for subscribers.
	SubjectAllResults = SubjectPrefix + ".>"
)

// SubjectResultComputed is the subject a result for a form of the given
// length is published on, e.g. "charmti.result.60.computed". Counts that are
// not an offered form share "charmti.result.other.computed".
func SubjectResultComputed(questionCount int) string {
	return SubjectPrefix + "." + bank.FormLabel(questionCount) + ".computed"
}
