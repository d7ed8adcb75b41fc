package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"svw.info/keypad/internal/domain"
	"svw.info/keypad/internal/infrastructure/storage"
	"svw.info/keypad/internal/layout"
	"svw.info/keypad/internal/paths"
	"svw.info/keypad/internal/usecase"
)

type Handler struct {
	UC           *usecase.Service
	DefaultDepth int
	MaxDepth     int
}

func New(uc *usecase.Service, defaultDepth, maxDepth int) *Handler {
	return &Handler{UC: uc, DefaultDepth: defaultDepth, MaxDepth: maxDepth}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/presses", h.handlePresses)
	mux.HandleFunc("/api/complexity", h.handleComplexity)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
	mux.HandleFunc("/api/paths", h.handlePaths)
}

// depth normalizes the requested chain depth: 0 means the default, anything
// negative or above the cap is rejected.
func (h *Handler) depth(d int) (int, bool) {
	if d == 0 {
		return h.DefaultDepth, true
	}
	if d < 0 || d > h.MaxDepth {
		return 0, false
	}
	return d, true
}

// ---- Presses ----

type pressesReq struct {
	Code  string `json:"code"`
	Depth int    `json:"depth,omitempty"`
}

type pressesResp struct {
	Code       string `json:"code,omitempty"`
	Depth      int    `json:"depth,omitempty"`
	Presses    int    `json:"presses,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Expansions int    `json:"expansions,omitempty"`
	CacheHits  int    `json:"cacheHits,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handlePresses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req pressesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pressesResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	code, err := domain.ParseCode(req.Code)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pressesResp{Error: err.Error()})
		return
	}
	depth, ok := h.depth(req.Depth)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pressesResp{Error: "depth out of range"})
		return
	}
	n, st, err := h.UC.Presses(r.Context(), code, depth)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(pressesResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(pressesResp{
		Code:       code.Text,
		Depth:      depth,
		Presses:    n,
		DurationMs: st.Duration.Milliseconds(),
		Expansions: st.Expansions,
		CacheHits:  st.CacheHits,
	})
}

// ---- Complexity ----

type complexityReq struct {
	Codes []string `json:"codes"`
	Depth int      `json:"depth,omitempty"`
}

type codeResult struct {
	Code    string `json:"code"`
	Value   int    `json:"value"`
	Presses int    `json:"presses"`
}

type complexityResp struct {
	Depth      int          `json:"depth,omitempty"`
	Complexity int          `json:"complexity,omitempty"`
	Codes      []codeResult `json:"codes,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleComplexity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req complexityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(complexityResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	codes, depth, errMsg := h.parseBatch(req.Codes, req.Depth)
	if errMsg != "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(complexityResp{Error: errMsg})
		return
	}
	results := make([]codeResult, 0, len(codes))
	total := 0
	var totalMs int64
	for _, code := range codes {
		n, st, err := h.UC.Presses(r.Context(), code, depth)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(complexityResp{Error: err.Error()})
			return
		}
		results = append(results, codeResult{Code: code.Text, Value: code.Value, Presses: n})
		total += n * code.Value
		totalMs += st.Duration.Milliseconds()
	}
	_ = json.NewEncoder(w).Encode(complexityResp{
		Depth:      depth,
		Complexity: total,
		Codes:      results,
		DurationMs: totalMs,
	})
}

func (h *Handler) parseBatch(raw []string, reqDepth int) ([]domain.Code, int, string) {
	if len(raw) == 0 {
		return nil, 0, "no codes given"
	}
	codes := make([]domain.Code, 0, len(raw))
	for _, s := range raw {
		code, err := domain.ParseCode(s)
		if err != nil {
			return nil, 0, err.Error()
		}
		codes = append(codes, code)
	}
	depth, ok := h.depth(reqDepth)
	if !ok {
		return nil, 0, "depth out of range"
	}
	return codes, depth, ""
}

// ---- Solve (compute + archive) ----

type solveResp struct {
	ID         string `json:"id,omitempty"`
	Depth      int    `json:"depth,omitempty"`
	Complexity int    `json:"complexity,omitempty"`
	Presses    []int  `json:"presses,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req complexityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	codes, depth, errMsg := h.parseBatch(req.Codes, req.Depth)
	if errMsg != "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: errMsg})
		return
	}
	rep, _, err := h.UC.Solve(r.Context(), codes, depth)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		ID:         rep.ID,
		Depth:      rep.Depth,
		Complexity: rep.Complexity,
		Presses:    rep.Presses,
	})
}

// ---- Load / List ----

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Report *domain.Report `json:"report,omitempty"`
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
	rep, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, storage.ErrNotFound) {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Report: rep})
}

type listResp struct {
	Reports []domain.ReportMeta `json:"reports"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	reports, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Reports: reports})
}

// ---- Paths (enumerator inspection) ----

type pathsReq struct {
	Layout string `json:"layout"`
	From   string `json:"from"`
	To     string `json:"to"`
}
type pathsResp struct {
	Paths []string `json:"paths,omitempty"`
	Error string   `json:"error,omitempty"`
}

func layoutByName(name string) *layout.Layout {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "directional":
		return layout.Directional
	case "numeric", "":
		return layout.Numeric
	}
	return nil
}

func (h *Handler) handlePaths(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req pathsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pathsResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	l := layoutByName(req.Layout)
	if l == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pathsResp{Error: "unknown layout " + req.Layout})
		return
	}
	from, err := domain.ParseButton(req.From)
	if err == nil && !l.Contains(from) {
		err = errors.New("button " + req.From + " not on " + l.Name() + " layout")
	}
	var to domain.Button
	if err == nil {
		to, err = domain.ParseButton(req.To)
		if err == nil && !l.Contains(to) {
			err = errors.New("button " + req.To + " not on " + l.Name() + " layout")
		}
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(pathsResp{Error: err.Error()})
		return
	}
	var out []string
	for _, seq := range paths.Shortest(l, from, to) {
		// trailing A: the sequence a controller must actually type
		out = append(out, domain.Sequence(seq)+"A")
	}
	_ = json.NewEncoder(w).Encode(pathsResp{Paths: out})
}
