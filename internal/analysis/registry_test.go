package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHandler claims paths from a fixed set and stamps its name on the
// record so dispatch order is observable.
type stubHandler struct {
	name   string
	claims map[string]bool
}

func (h *stubHandler) CanHandle(path string) bool { return h.claims[path] }

func (h *stubHandler) Analyze(path string) FileAnalysis {
	return FileAnalysis{ContentSummary: h.name, ComplexityScore: 1}
}

func TestRegistryFirstMatchWins(t *testing.T) {
	first := &stubHandler{name: "first", claims: map[string]bool{"shared": true}}
	second := &stubHandler{name: "second", claims: map[string]bool{"shared": true, "other": true}}
	r := NewRegistry(first, second)

	fa, ok := r.Dispatch("shared")
	require.True(t, ok)
	assert.Equal(t, "first", fa.ContentSummary)

	fa, ok = r.Dispatch("other")
	require.True(t, ok)
	assert.Equal(t, "second", fa.ContentSummary)
}

func TestRegistryDispatchDeterministic(t *testing.T) {
	a := &stubHandler{name: "a", claims: map[string]bool{"f": true}}
	b := &stubHandler{name: "b", claims: map[string]bool{"f": true}}
	r := NewRegistry(a, b)

	for i := 0; i < 50; i++ {
		fa, ok := r.Dispatch("f")
		require.True(t, ok)
		assert.Equal(t, "a", fa.ContentSummary)
	}
}

func TestRegistryUnclaimedFile(t *testing.T) {
	r := NewRegistry(&stubHandler{name: "a", claims: map[string]bool{}})

	_, ok := r.Dispatch("unknown.zig")
	assert.False(t, ok)
}

func TestDefaultRegistrationOrder(t *testing.T) {
	a := NewAnalyzer()

	// requirements.txt must reach the manifest handler, not be shadowed.
	handlers := a.registry.handlers
	require.Len(t, handlers, 5)
	assert.IsType(t, &sourceHandler{}, handlers[0])
	assert.IsType(t, &sourceHandler{}, handlers[1])
	assert.IsType(t, &packageJSONHandler{}, handlers[2])
	assert.IsType(t, &requirementsHandler{}, handlers[3])
	assert.IsType(t, &readmeHandler{}, handlers[4])
}
