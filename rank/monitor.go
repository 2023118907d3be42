package rank

import "github.com/poiesic/suggest/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during a ranking pass.
type RankMonitor interface {
	Start(query string)
	AfterCandidateGeneration(candidates []*Candidate)
	Degraded(err error)
	AfterScoring(candidates []*Candidate)
	GeoExcluded(candidate *Candidate, distanceKm float64)
	ColdStart(suggestions []string)
	Finish(result *core.RankedResult)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                             {}
func (n *noopMonitor) AfterCandidateGeneration(_ []*Candidate)    {}
func (n *noopMonitor) Degraded(_ error)                           {}
func (n *noopMonitor) AfterScoring(_ []*Candidate)                {}
func (n *noopMonitor) GeoExcluded(_ *Candidate, _ float64)        {}
func (n *noopMonitor) ColdStart(_ []string)                       {}
func (n *noopMonitor) Finish(_ *core.RankedResult)                {}
