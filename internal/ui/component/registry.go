// Package component renders pane chrome and editor views as terminal text.
package component

import (
	"sync"

	"github.com/bnema/panekit/internal/application/port"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/infrastructure/cache"
	"github.com/bnema/panekit/internal/ui/theme"
)

// renderCacheSize bounds the number of cached view bodies.
const renderCacheSize = 64

// renderKey identifies one rendered body. EditorData compares by snapshot
// pointer, so a new mixer snapshot never hits an old entry.
type renderKey struct {
	ct   entity.ContentType
	w, h int
	data entity.EditorData
}

// ContentView draws one kind of editor inside a leaf body. Render must return
// at most height lines of at most width cells each.
type ContentView interface {
	Render(data entity.EditorData, width, height int) string
}

// ContentViewFunc adapts a function to ContentView.
type ContentViewFunc func(data entity.EditorData, width, height int) string

// Render calls f.
func (f ContentViewFunc) Render(data entity.EditorData, width, height int) string {
	return f(data, width, height)
}

// ContentRegistry maps content types to the views that draw them.
type ContentRegistry struct {
	theme  *theme.Theme
	views  map[entity.ContentType]ContentView
	bodies port.Cache[renderKey, string]
	mu     sync.RWMutex
}

// NewContentRegistry creates an empty registry.
func NewContentRegistry(th *theme.Theme) *ContentRegistry {
	if th == nil {
		th = theme.Default()
	}
	return &ContentRegistry{
		theme:  th,
		views:  make(map[entity.ContentType]ContentView),
		bodies: cache.NewLRU[renderKey, string](renderCacheSize),
	}
}

// DefaultRegistry returns a registry with the four editor views registered.
func DefaultRegistry(th *theme.Theme) *ContentRegistry {
	r := NewContentRegistry(th)
	r.Register(entity.ContentTimeline, NewTimelineView(r.theme))
	r.Register(entity.ContentGraphEditor, NewGraphEditorView(r.theme))
	r.Register(entity.ContentNodeInspector, NewNodeInspectorView(r.theme))
	r.Register(entity.ContentPianoRoll, NewPianoRollView(r.theme))
	return r
}

// Register installs v for ct, replacing any previous view.
func (r *ContentRegistry) Register(ct entity.ContentType, v ContentView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.views[ct] = v
	r.bodies.Clear()
}

// Lookup returns the view registered for ct.
func (r *ContentRegistry) Lookup(ct entity.ContentType) (ContentView, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.views[ct]
	return v, ok
}

// Render draws ct's view, or a placeholder naming ct when none is registered.
// Bodies are cached per content type, size and editor data snapshot.
func (r *ContentRegistry) Render(ct entity.ContentType, data entity.EditorData, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	v, ok := r.Lookup(ct)
	if !ok {
		return placeholder(r.theme, ct.String()+" unavailable", width, height)
	}
	key := renderKey{ct: ct, w: width, h: height, data: data}
	if body, ok := r.bodies.Get(key); ok {
		return body
	}
	body := v.Render(data, width, height)
	r.bodies.Set(key, body)
	return body
}
