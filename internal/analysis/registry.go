package analysis

// Handler claims files by name or extension and converts them into
// FileAnalysis records. Analyze must absorb its own read and parse
// failures into a degraded record.
type Handler interface {
	CanHandle(path string) bool
	Analyze(path string) FileAnalysis
}

// Registry holds an ordered list of handlers. Dispatch is
// first-match-wins: registration order decides when two handlers could
// claim the same file.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates a registry with the given handlers in registration
// order.
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{handlers: handlers}
}

// Dispatch returns the analysis from the first handler claiming path.
// The second return value is false when no handler claims the file; that
// is not an error, the caller is expected to skip it.
func (r *Registry) Dispatch(path string) (FileAnalysis, bool) {
	for _, h := range r.handlers {
		if h.CanHandle(path) {
			return h.Analyze(path), true
		}
	}
	return FileAnalysis{}, false
}
