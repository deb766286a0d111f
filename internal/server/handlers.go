package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aryannaik/blog-search/internal/index"
	"github.com/aryannaik/blog-search/internal/search"
)

// Handlers serves the filter API over the current index. Reloading swaps in a
// freshly built index; each index itself is immutable, so search passes read
// it without further locking once they hold the pointer.
type Handlers struct {
	mu       sync.RWMutex
	idx      *index.Index
	loadedAt time.Time

	rebuild func() (*index.Index, error)
}

// NewHandlers wires the API to an initial index and a rebuild function used
// by the reload endpoint (and watch mode, via Reload).
func NewHandlers(idx *index.Index, rebuild func() (*index.Index, error)) *Handlers {
	return &Handlers{idx: idx, loadedAt: time.Now(), rebuild: rebuild}
}

func (h *Handlers) current() *index.Index {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.idx
}

// Reload rebuilds the index from disk and swaps it in atomically. In-flight
// searches keep the snapshot they started with.
func (h *Handlers) Reload() error {
	idx, err := h.rebuild()
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.idx = idx
	h.loadedAt = time.Now()
	h.mu.Unlock()

	slog.Info("index reloaded", "posts", idx.Len())
	return nil
}

// sliceView collects visibility verdicts into a per-request slice that the
// frontend applies to the rendered list.
type sliceView struct {
	visible []bool
}

func (v *sliceView) SetVisible(i int, visible bool) {
	v.visible[i] = visible
}

type searchResponse struct {
	Query   string `json:"query"`
	Count   int    `json:"count"`
	Visible []bool `json:"visible"`
}

// HandleSearch runs one filtering pass. An absent or whitespace-only q is the
// match-all query, so the response simply shows every post.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	idx := h.current()

	view := &sliceView{visible: make([]bool, idx.Len())}
	count := search.NewFilter(idx, view, nil).Apply(query)

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Count:   count,
		Visible: view.visible,
	})
}

// HandlePosts returns the full entry list in presentation order, for the
// initial page render.
func (h *Handlers) HandlePosts(w http.ResponseWriter, r *http.Request) {
	idx := h.current()
	writeJSON(w, http.StatusOK, map[string]any{
		"posts": idx.Entries,
		"total": idx.Len(),
	})
}

type statusResponse struct {
	PostCount int    `json:"postCount"`
	LoadedAt  string `json:"loadedAt"`
}

func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	resp := statusResponse{
		PostCount: h.idx.Len(),
		LoadedAt:  h.loadedAt.UTC().Format(time.RFC3339),
	}
	h.mu.RUnlock()

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.Reload(); err != nil {
		slog.Error("reload failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "reload failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "reloaded",
		"posts":  h.current().Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode JSON response", "error", err)
	}
}
