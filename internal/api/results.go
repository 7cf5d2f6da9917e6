package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/CharMTI/internal/events"
	"github.com/MikeSquared-Agency/CharMTI/internal/metrics"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

type ResultsHandler struct {
	engine  *scoring.Engine
	events  events.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewResultsHandler(e *scoring.Engine, ev events.Client, m *metrics.Metrics, logger *slog.Logger) *ResultsHandler {
	return &ResultsHandler{engine: e, events: ev, metrics: m, logger: logger, now: time.Now}
}

type ComputeRequest struct {
	Answers       []int `json:"answers"`
	QuestionCount int   `json:"question_count"`
}

type ResultResponse struct {
	RunID     string         `json:"run_id"`
	ShareCode string         `json:"share_code"`
	Result    scoring.Result `json:"result"`
}

type ExplainResponse struct {
	RunID     string                  `json:"run_id"`
	ShareCode string                  `json:"share_code"`
	Result    scoring.Result          `json:"result"`
	Axes      []scoring.AxisBreakdown `json:"axes"`
}

// Create scores a JSON answer sheet.
// POST /api/v1/results
func (h *ResultsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComputeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.compute(req))
}

// FromQuery scores an answer sheet encoded as ans0..ansN plus
// totalQuestions, the form the test page redirects with.
// GET /api/v1/results
func (h *ResultsHandler) FromQuery(w http.ResponseWriter, r *http.Request) {
	req, err := parseQueryAnswers(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.compute(req))
}

// Explain scores a JSON answer sheet and adds the per-axis breakdown.
// POST /api/v1/results/explain
func (h *ResultsHandler) Explain(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComputeRequest(w, r)
	if !ok {
		return
	}
	ex := h.engine.Explain(req.Answers, req.QuestionCount)
	runID := h.record(ex.Result)
	writeJSON(w, http.StatusOK, ExplainResponse{
		RunID:     runID,
		ShareCode: ex.Result.ShareCode(),
		Result:    ex.Result,
		Axes:      ex.Axes,
	})
}

func (h *ResultsHandler) compute(req ComputeRequest) ResultResponse {
	res := h.engine.Compute(req.Answers, req.QuestionCount)
	return ResultResponse{
		RunID:     h.record(res),
		ShareCode: res.ShareCode(),
		Result:    res,
	}
}

// record assigns a run ID and reports the result to metrics and events.
// Event failures are logged and never reach the caller.
func (h *ResultsHandler) record(res scoring.Result) string {
	runID := uuid.NewString()
	if h.metrics != nil {
		h.metrics.ObserveResult(res.QuestionCount, res.MBTIType, res.CharmType, res.SkippedAnswers)
	}
	ev := events.NewResultComputedEvent(runID, res, h.now())
	if err := events.PublishResult(h.events, ev); err != nil {
		h.logger.Warn("failed to publish result event", "run_id", runID, "error", err)
	}
	h.logger.Info("result computed",
		"run_id", runID,
		"type", res.ShareCode(),
		"question_count", res.QuestionCount,
		"skipped_answers", res.SkippedAnswers,
	)
	return runID
}

func decodeComputeRequest(w http.ResponseWriter, r *http.Request) (ComputeRequest, bool) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

// validate rejects sheets the result page would have redirected away from.
// A length mismatch between answers and question_count is tolerated; the
// engine degrades instead.
func (req ComputeRequest) validate() error {
	if len(req.Answers) == 0 {
		return fmt.Errorf("answers required")
	}
	if req.QuestionCount <= 0 {
		return fmt.Errorf("question_count must be positive")
	}
	for i, a := range req.Answers {
		if !scoring.ValidAnswer(a) {
			return fmt.Errorf("answer %d out of range [%d, %d]", i, scoring.MinAnswer, scoring.MaxAnswer)
		}
	}
	return nil
}

func parseQueryAnswers(q url.Values) (ComputeRequest, error) {
	var req ComputeRequest
	if v := q.Get("totalQuestions"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid totalQuestions %q", v)
		}
		req.QuestionCount = n
	}

	byIndex := make(map[int]int)
	for key, vals := range q {
		if !strings.HasPrefix(key, "ans") || len(vals) == 0 {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(key, "ans"))
		if err != nil || idx < 0 {
			return req, fmt.Errorf("invalid answer key %q", key)
		}
		v, err := strconv.Atoi(vals[0])
		if err != nil {
			return req, fmt.Errorf("invalid value for %s", key)
		}
		byIndex[idx] = v
	}

	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for i, idx := range indices {
		if i != idx {
			return req, fmt.Errorf("missing answer ans%d", i)
		}
		req.Answers = append(req.Answers, byIndex[idx])
	}
	return req, nil
}
