package analyzer

import (
	"sort"

	"github.com/depscope/depscope/errdefs"
)

// Impact score weights. Direct dependents break immediately, transitive
// dependents may break, affected tests add verification cost.
const (
	directWeight     = 3.0
	transitiveWeight = 1.0
	testWeight       = 0.5
)

// GetImpactAnalysis reports which files a change to path would affect and a
// weighted risk score: 3 per direct dependent, 1 per transitive dependent,
// 0.5 per affected test.
func (a *Analyzer) GetImpactAnalysis(path string) (*ImpactAnalysisResult, error) {
	normalized, err := a.normalizePath(path)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	if !a.graph.HasNode(normalized) {
		a.mu.Unlock()
		return nil, errdefs.NotFoundf("file not analyzed: %s", normalized)
	}
	direct := a.graph.Dependents(normalized)
	transitive := a.graph.TransitiveDependents(normalized)
	a.mu.Unlock()

	testSet := make(map[string]bool)
	if IsTestFile(normalized) {
		testSet[normalized] = true
	}
	for _, dependent := range transitive {
		if IsTestFile(dependent) {
			testSet[dependent] = true
		}
	}
	tests := make([]string, 0, len(testSet))
	for test := range testSet {
		tests = append(tests, test)
	}
	sort.Strings(tests)

	score := directWeight*float64(len(direct)) +
		transitiveWeight*float64(len(transitive)) +
		testWeight*float64(len(tests))

	return &ImpactAnalysisResult{
		TargetFile:           normalized,
		DirectlyAffected:     direct,
		TransitivelyAffected: transitive,
		AffectedTests:        tests,
		ImpactScore:          score,
	}, nil
}
