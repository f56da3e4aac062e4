package analyzer

import "github.com/depscope/depscope/cycles"

// GetStats summarizes the current graph: node/edge totals, derived averages
// and maxima, cycle count, and orphan count.
func (a *Analyzer) GetStats() DependencyStats {
	a.mu.Lock()
	snapshot, err := a.graph.Clone()
	a.mu.Unlock()
	if err != nil {
		return DependencyStats{}
	}

	stats := DependencyStats{
		TotalFiles:        snapshot.NodeCount(),
		TotalDependencies: snapshot.EdgeCount(),
		OrphanedFiles:     len(snapshot.OrphanedNodes()),
	}

	for _, node := range snapshot.Nodes() {
		info, ok := snapshot.GetNodeInfo(node)
		if !ok {
			continue
		}
		if info.OutDegree > stats.MaxDependenciesInFile {
			stats.MaxDependenciesInFile = info.OutDegree
		}
	}

	if stats.TotalFiles > 0 {
		stats.AverageDependenciesPerFile = float64(stats.TotalDependencies) / float64(stats.TotalFiles)
	}

	stats.CircularDependencies = cycles.CountCycles(snapshot)
	return stats
}
