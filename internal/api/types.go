package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
)

type TypesHandler struct {
	catalog *catalog.Catalog
}

func NewTypesHandler(c *catalog.Catalog) *TypesHandler {
	return &TypesHandler{catalog: c}
}

type TypeResponse struct {
	ShareCode                 string `json:"share_code"`
	MBTIType                  string `json:"mbti_type"`
	CharmType                 string `json:"charm_type,omitempty"`
	MBTIDescription           string `json:"mbti_description"`
	CharmPrimaryDescription   string `json:"charm_primary_description,omitempty"`
	CharmSecondaryDescription string `json:"charm_secondary_description,omitempty"`
}

// Get describes a shared type code such as "INFP-BD" or "INFP", so a shared
// link can be rendered without the answers that produced it.
// GET /api/v1/types/{code}
func (h *TypesHandler) Get(w http.ResponseWriter, r *http.Request) {
	mbti, charm, ok := parseShareCode(chi.URLParam(r, "code"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid type code")
		return
	}

	resp := TypeResponse{
		ShareCode:       mbti,
		MBTIType:        mbti,
		MBTIDescription: h.catalog.MBTI(mbti),
	}
	if charm != "" {
		resp.ShareCode = mbti + "-" + charm
		resp.CharmType = charm
		resp.CharmPrimaryDescription = h.catalog.CharmPrimary(charm[:1])
		resp.CharmSecondaryDescription = h.catalog.CharmSecondary(charm[1:])
	}
	writeJSON(w, http.StatusOK, resp)
}

// List returns every MBTI code with its description.
// GET /api/v1/types
func (h *TypesHandler) List(w http.ResponseWriter, r *http.Request) {
	out := make([]TypeResponse, 0, 16)
	for _, code := range catalog.AllMBTICodes() {
		out = append(out, TypeResponse{ShareCode: code, MBTIType: code, MBTIDescription: h.catalog.MBTI(code)})
	}
	writeJSON(w, http.StatusOK, out)
}

// parseShareCode checks each letter sits on its axis in canonical order.
func parseShareCode(s string) (mbti, charm string, ok bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	mbti, charm, _ = strings.Cut(s, "-")
	if !lettersOnAxes(mbti, bank.MBTIAxes[:]) {
		return "", "", false
	}
	if charm != "" && !lettersOnAxes(charm, bank.CharmAxes[:]) {
		return "", "", false
	}
	return mbti, charm, true
}

func lettersOnAxes(code string, axes []bank.Axis) bool {
	if len(code) != len(axes) {
		return false
	}
	for i, a := range axes {
		l, err := bank.ParseLetter(code[i : i+1])
		if err != nil || l.Axis() != a {
			return false
		}
	}
	return true
}
