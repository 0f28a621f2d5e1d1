package brackets

import (
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/dominikbraun/graph"
)

// History is the set of unordered competitor pairs that have already met.
// Vertices are competitor ids, an edge means "played each other at least once".
type History struct {
	g graph.Graph[int, int]
}

func NewHistory() *History {
	return &History{g: graph.New(graph.IntHash)}
}

// BuildHistory collects every non-bye pairing of the given rounds.
func BuildHistory(rounds []models.Round) *History {
	h := NewHistory()
	for _, round := range rounds {
		for _, p := range round.Pairings {
			if p.IsBye() {
				continue
			}
			h.Record(p.FirstID, *p.SecondID)
		}
	}
	return h
}

// Record marks a and b as having played. Repeated meetings are collapsed.
func (h *History) Record(a, b int) {
	if a == b {
		return
	}
	// ErrVertexAlreadyExists / ErrEdgeAlreadyExists are expected on rematches.
	_ = h.g.AddVertex(a)
	_ = h.g.AddVertex(b)
	_ = h.g.AddEdge(a, b)
}

func (h *History) Played(a, b int) bool {
	if h == nil {
		return false
	}
	_, err := h.g.Edge(a, b)
	return err == nil
}
