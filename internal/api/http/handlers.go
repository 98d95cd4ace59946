// Package http holds the JSON handlers for the launcher's HTTP
// adapter. The adapter owns all encoding; the engine and providers
// exchange structs only.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/lumen/internal/engine"
	"github.com/GriffinCanCode/lumen/internal/infrastructure/logging"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
	"github.com/GriffinCanCode/lumen/internal/theme"
)

// DefaultMaxResults caps a search when the request does not say how
// many results it wants.
const DefaultMaxResults = 8

// Handlers bundles the HTTP endpoints over one engine instance.
type Handlers struct {
	engine     *engine.Engine
	themes     *theme.Store
	log        *logging.Logger
	maxResults int
}

// NewHandlers creates the handler set.
func NewHandlers(eng *engine.Engine, themes *theme.Store, log *logging.Logger) *Handlers {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handlers{engine: eng, themes: themes, log: log, maxResults: DefaultMaxResults}
}

// WithMaxResults overrides the cap applied to requests that omit
// max_results.
func (h *Handlers) WithMaxResults(n int) *Handlers {
	if n > 0 {
		h.maxResults = n
	}
	return h
}

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Results []types.Candidate `json:"results"`
	Count   int               `json:"count"`
}

// Search evaluates a query and returns the ranked results.
func (h *Handlers) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MaxResults < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_results must be non-negative"})
		return
	}
	// A frontend always wants a page of results; zero means "omitted"
	// on this surface, not "give me nothing".
	max := req.MaxResults
	if max == 0 {
		max = h.maxResults
	}

	results, err := h.engine.Search(c.Request.Context(), req.Query, max)
	if err != nil {
		h.engineError(c, err)
		return
	}
	if results == nil {
		results = []types.Candidate{}
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results, Count: len(results)})
}

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	Index *int `json:"index"`
}

// Execute acts on a result from the most recent search. The outcome
// is always 200 with a typed body; error outcomes are launcher
// results, not transport failures.
func (h *Handlers) Execute(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
		return
	}

	outcome := h.engine.Execute(c.Request.Context(), *req.Index)
	c.JSON(http.StatusOK, outcome)
}

// ResultCount reports the size of the remembered result list.
func (h *Handlers) ResultCount(c *gin.Context) {
	count, err := h.engine.ResultCount()
	if err != nil {
		h.engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// PollClipboard ingests the current system clipboard.
func (h *Handlers) PollClipboard(c *gin.Context) {
	if err := h.engine.PollClipboard(c.Request.Context()); err != nil {
		h.engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Reload rebuilds the provider indexes.
func (h *Handlers) Reload(c *gin.Context) {
	if err := h.engine.Reload(c.Request.Context()); err != nil {
		if errors.Is(err, engine.ErrClosed) {
			h.engineError(c, err)
			return
		}
		// Partial reload failures still cleared the session state.
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListThemes returns every theme.
func (h *Handlers) ListThemes(c *gin.Context) {
	themes := h.themes.List()
	c.JSON(http.StatusOK, gin.H{"themes": themes, "count": len(themes)})
}

// GetTheme returns one theme by ID.
func (h *Handlers) GetTheme(c *gin.Context) {
	id := c.Param("id")
	t, ok := h.themes.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "theme not found: " + id})
		return
	}
	c.JSON(http.StatusOK, t)
}

// Health reports daemon liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"engine_id": h.engine.ID(),
	})
}

func (h *Handlers) engineError(c *gin.Context, err error) {
	if errors.Is(err, engine.ErrClosed) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, engine.ErrQueryTooLong) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
