package search

import (
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/index"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterRequiredTerms(terms []string)
	AfterVectorSearch(hits []index.Hit)
	StrictHit(recipe *core.Recipe)
	PartialHit(recipe *core.Recipe)
	Finish(results []*core.Recipe)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string) {}
func (n *noopMonitor) AfterRequiredTerms(_ []string) {}
func (n *noopMonitor) AfterVectorSearch(_ []index.Hit) {}
func (n *noopMonitor) StrictHit(_ *core.Recipe) {}
func (n *noopMonitor) PartialHit(_ *core.Recipe) {}
func (n *noopMonitor) Finish(_ []*core.Recipe) {}
