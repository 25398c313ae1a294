package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// MaxNumber bounds accepted puzzle numbers; defaults to the
	// double-digit limit when zero.
	MaxNumber int
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func (h *Handler) maxNumber() int {
	if h.MaxNumber > 0 {
		return h.MaxNumber
	}
	return domain.WidthDouble.Max()
}

func (h *Handler) checkNumbers(numbers [4]int) bool {
	for _, n := range numbers {
		if n < 1 || n > h.maxNumber() {
			return false
		}
	}
	return true
}

// ---- Solve ----

type solveReq struct {
	Numbers [4]int `json:"numbers"`
}

type solveResp struct {
	Numbers    [4]int   `json:"numbers,omitempty"`
	Solutions  []string `json:"solutions"`
	Count      int      `json:"count"`
	Checked    int      `json:"checked,omitempty"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if !h.checkNumbers(req.Numbers) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "numbers must be positive and within the configured range"})
		return
	}
	sols, st, err := h.UC.Solve(r.Context(), req.Numbers)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	texts := make([]string, len(sols))
	for i, s := range sols {
		texts[i] = s.Text
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Numbers:    req.Numbers,
		Solutions:  texts,
		Count:      len(texts),
		Checked:    st.Checked,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Generate ----

type generateReq struct {
	Count int `json:"count,omitempty"` // solvable puzzles to produce, default 1
}

type generateResp struct {
	Puzzles    []*domain.Puzzle `json:"puzzles,omitempty"`
	Checked    int              `json:"checked,omitempty"`
	DurationMs int64            `json:"durationMs,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > 20 {
		count = 20 // keep a single request's work bounded
	}
	ps, st, err := h.UC.GenerateSolvable(r.Context(), count)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Puzzles:    ps,
		Checked:    st.Checked,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Hint ----

type hintReq struct {
	Numbers [4]int `json:"numbers"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if !h.checkNumbers(req.Numbers) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "numbers must be positive and within the configured range"})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Numbers)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
