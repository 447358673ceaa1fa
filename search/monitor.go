package search

import "github.com/halcyonforge/eu5ref/core"

// SearchMonitor provides hooks to observe a fuzzy search.
// Implement this interface to track candidate selection and ranking.
type SearchMonitor interface {
	Start(query string)
	Candidate(entry *core.Entry, score float64, substring bool)
	Finish(matches []Match)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                             {}
func (n *noopMonitor) Candidate(_ *core.Entry, _ float64, _ bool) {}
func (n *noopMonitor) Finish(_ []Match)                           {}
