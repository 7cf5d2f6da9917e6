package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

type StatementsHandler struct {
	bank *bank.Bank
}

func NewStatementsHandler(b *bank.Bank) *StatementsHandler {
	return &StatementsHandler{bank: b}
}

type StatementView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type StatementsResponse struct {
	QuestionCount int             `json:"question_count"`
	Statements    []StatementView `json:"statements"`
	Scale         []scoring.Step  `json:"scale"`
}

// List returns the statements of one form. Tags are not disclosed.
// GET /api/v1/statements?questions=60|120
func (h *StatementsHandler) List(w http.ResponseWriter, r *http.Request) {
	stmts := h.bank.Prefix(bank.FormLength(r.URL.Query().Get("questions")))
	if len(stmts) == 0 {
		writeError(w, http.StatusServiceUnavailable, "statement bank is empty")
		return
	}

	views := make([]StatementView, len(stmts))
	for i, s := range stmts {
		views[i] = StatementView{Index: i, Text: s.Text}
	}
	writeJSON(w, http.StatusOK, StatementsResponse{
		QuestionCount: len(views),
		Statements:    views,
		Scale:         scoring.Ladder(),
	})
}

// Scale returns the seven answer steps.
// GET /api/v1/scale
func (h *StatementsHandler) Scale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Ladder())
}
