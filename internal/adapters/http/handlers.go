package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/solver"
	"svw.info/squaredaway/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// puzzlePayload is the wire form of a puzzle's clue sets.
type puzzlePayload struct {
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Shading domain.ClueSet `json:"shading"`
	Erasing domain.ClueSet `json:"erasing"`
}

func (p puzzlePayload) puzzle() *domain.Puzzle {
	return &domain.Puzzle{
		Width:   p.Width,
		Height:  p.Height,
		Shading: p.Shading,
		Erasing: p.Erasing,
	}
}

// solveStatus maps the solver error taxonomy to HTTP codes: structural
// problems are the client's fault, an unsolvable clue pair is a valid
// answer about the input, anything else is ours.
func solveStatus(err error) int {
	switch {
	case errors.Is(err, solver.ErrInvalidClues):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrUnsolvable), errors.Is(err, solver.ErrContradiction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ---- Solve ----

type solveReq struct {
	puzzlePayload
	// Reference, when present, switches on solve-and-check mode.
	Reference []string `json:"reference,omitempty"`
}

type solveResp struct {
	Grid       []string           `json:"grid,omitempty"`
	Mismatches []domain.CellCoord `json:"mismatches,omitempty"`
	DurationMs int64              `json:"durationMs,omitempty"`
	Nodes      int                `json:"nodes,omitempty"`
	Passes     int                `json:"passes,omitempty"`
	Error      string             `json:"error,omitempty"`
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
	p := req.puzzle()
	if len(req.Reference) > 0 {
		grid, mismatches, st, err := h.UC.Check(r.Context(), p, domain.GridFromStrings(req.Reference))
		if err != nil {
			w.WriteHeader(solveStatus(err))
			_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds()})
			return
		}
		_ = json.NewEncoder(w).Encode(solveResp{
			Grid:       grid.Strings(),
			Mismatches: mismatches,
			DurationMs: st.Duration.Milliseconds(),
			Nodes:      st.Nodes,
			Passes:     st.Passes,
		})
		return
	}
	grid, st, err := h.UC.Solve(r.Context(), p)
	if err != nil {
		w.WriteHeader(solveStatus(err))
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes, Passes: st.Passes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Grid:       grid.Strings(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		Passes:     st.Passes,
	})
}

// ---- Generate ----

type generateReq struct {
	// Grid, when present, builds a puzzle from an authored picture.
	Grid []string `json:"grid,omitempty"`
	// Otherwise a seeded random puzzle is rolled.
	Seed    int64   `json:"seed,omitempty"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
	Density float64 `json:"density,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Grid) > 0 {
		puz, stats, gerr := h.UC.FromGrid(r.Context(), domain.GridFromStrings(req.Grid))
		if gerr != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(generateResp{Error: gerr.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(generateResp{Puzzle: puz, DurationMs: stats.Duration.Milliseconds(), Nodes: stats.Nodes})
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: fmt.Sprintf("bad dimensions %dx%d", req.Width, req.Height)})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, stats, err := h.UC.Generate(r.Context(), seed, req.Width, req.Height, req.Density)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{Puzzle: p, DurationMs: stats.Duration.Milliseconds(), Nodes: stats.Nodes})
}

// ---- Validate ----

type validateReq struct {
	puzzlePayload
	Grid []string `json:"grid"`
}

type validateResp struct {
	OK        bool             `json:"ok"`
	Conflicts []domain.LineRef `json:"conflicts,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), domain.GridFromStrings(req.Grid), req.puzzle())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	puzzlePayload
	// Phase: "shading" or "erasing".
	Phase string `json:"phase"`
	// Cells is the player's partial layer: '#' set, '.' unset, '?' unknown.
	Cells []string `json:"cells"`
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
	phase := domain.PhaseShading
	cs := req.Shading
	if req.Phase == "erasing" {
		phase = domain.PhaseErasing
		cs = req.Erasing
	}
	board, err := domain.ParseBoard(req.Cells)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), cs, board, phase)
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
