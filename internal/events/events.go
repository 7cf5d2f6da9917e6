package events

import (
	"time"

	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

type ResultComputedEvent struct {
	RunID         string              `json:"run_id"`
	QuestionCount int                 `json:"question_count"`
	MBTIType      string              `json:"mbti_type"`
	CharmType     string              `json:"charm_type"`
	Percentages   scoring.Percentages `json:"percentages"`
	ComputedAt    time.Time           `json:"computed_at"`
}

// NewResultComputedEvent summarises a result without its description text.
func NewResultComputedEvent(runID string, r scoring.Result, at time.Time) ResultComputedEvent {
	return ResultComputedEvent{
		RunID:         runID,
		QuestionCount: r.QuestionCount,
		MBTIType:      r.MBTIType,
		CharmType:     r.CharmType,
		Percentages:   r.Percentages,
		ComputedAt:    at.UTC(),
	}
}
