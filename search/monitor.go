package search

import "github.com/poiesic/recipebox/core"

// FilterMonitor provides hooks to observe a criteria filter.
// Implement this interface to see how each predicate narrows the result.
type FilterMonitor interface {
	Start(criteria Criteria)
	AfterScan(total int)
	AfterPredicate(name string, remaining int)
	Finish(results []*core.Recipe)
}

// noopMonitor is a no-op implementation of FilterMonitor
type noopMonitor struct{}

var _ FilterMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ Criteria)               {}
func (n *noopMonitor) AfterScan(_ int)                {}
func (n *noopMonitor) AfterPredicate(_ string, _ int) {}
func (n *noopMonitor) Finish(_ []*core.Recipe)        {}
