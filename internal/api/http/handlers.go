package http

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/infrastructure/monitoring"
	"github.com/neunato/zed/internal/render"
)

// Handlers contains all HTTP handlers for the showcase API.
type Handlers struct {
	registry     *component.Registry
	metrics      *monitoring.Metrics
	defaultTheme string
}

// NewHandlers creates a handler set over the given registry.
func NewHandlers(registry *component.Registry, metrics *monitoring.Metrics, defaultTheme string) *Handlers {
	return &Handlers{
		registry:     registry,
		metrics:      metrics,
		defaultTheme: defaultTheme,
	}
}

// snapshot builds a fresh catalog snapshot and records its size.
func (h *Handlers) snapshot() *component.AllComponents {
	snap := h.registry.Components()
	h.metrics.RecordSnapshot(snap.Len(), len(snap.AllPreviews()))
	return snap
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "component-showcase",
		"version": "0.2.0",
	})
}

// Health handles detailed health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"catalog": h.registry.Stats(),
	})
}

// ListComponents lists catalogued components in name order. Optional query
// params: scope (exact display text), previews=true to keep only
// preview-capable entries.
func (h *Handlers) ListComponents(c *gin.Context) {
	snap := h.snapshot()

	var entries []component.Metadata
	if c.Query("previews") == "true" {
		entries = snap.AllPreviewsSorted()
	} else {
		entries = snap.AllSorted()
	}

	if text := c.Query("scope"); text != "" {
		scope := component.ParseScope(text)
		filtered := entries[:0]
		for _, m := range entries {
			if m.Scope == scope {
				filtered = append(filtered, m)
			}
		}
		entries = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"components": entries,
		"total":      len(entries),
	})
}

// GetComponent returns one component by ID.
func (h *Handlers) GetComponent(c *gin.Context) {
	snap := h.snapshot()

	meta, ok := snap.Get(component.ID(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"component":   meta,
		"has_preview": meta.HasPreview(),
	})
}

// RenderPreview invokes a component's preview callback with a render
// context built from the requested theme.
func (h *Handlers) RenderPreview(c *gin.Context) {
	snap := h.snapshot()

	id := component.ID(c.Param("id"))
	meta, ok := snap.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		return
	}
	if !meta.HasPreview() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "component has no preview"})
		return
	}

	theme := render.ThemeOrDefault(c.Query("theme"), h.defaultTheme)
	element := meta.Preview(render.NewContext(theme))
	h.metrics.PreviewRenders.WithLabelValues(string(id)).Inc()

	body, err := sonic.Marshal(gin.H{
		"id":      id,
		"theme":   theme.ID,
		"element": element,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode element"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// ListScopes returns the catalog grouped by scope, plus the known taxonomy.
func (h *Handlers) ListScopes(c *gin.Context) {
	snap := h.snapshot()

	known := make([]string, 0, len(component.KnownScopes()))
	for _, s := range component.KnownScopes() {
		known = append(known, s.String())
	}

	c.JSON(http.StatusOK, gin.H{
		"groups": catalog.Groups(snap),
		"scopes": known,
	})
}

// ListThemes returns the themes previews can render against.
func (h *Handlers) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":  render.Themes(),
		"default": h.defaultTheme,
	})
}
