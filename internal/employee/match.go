package employee

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Match pairs an employee with how closely its name resembles the probe.
type Match struct {
	Employee Employee
	Score    float64
}

// rankSimilar scores every employee name against the probe and returns
// those at or above the threshold, best first. Comparison is
// case-insensitive.
func rankSimilar(name string, employees []Employee, threshold float64) []Match {
	probe := strings.ToLower(name)
	params := levenshtein.NewParams()

	//nolint:prealloc //Most employees will not match.
	var matches []Match
	for _, emp := range employees {
		score := levenshtein.Similarity(strings.ToLower(emp.Name), probe, params)
		if score >= threshold {
			matches = append(matches, Match{Employee: emp, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
