// internal/matching/scorer.go
// Overlap-based compatibility scoring

package matching

import "math"

// scoreDenominator is fixed at the selection cap rather than the size of
// either set, matching the product's percentage semantics. A query with
// fewer tags therefore cannot reach 100%.
const scoreDenominator = 5

// Score computes the match percentage between two interest sets.
// Symmetric in its arguments; empty or nil input on either side yields 0.
func Score(querySelections, candidateSelections []string) int {
	if len(querySelections) == 0 || len(candidateSelections) == 0 {
		return 0
	}

	candidateSet := make(map[string]struct{}, len(candidateSelections))
	for _, tag := range candidateSelections {
		candidateSet[tag] = struct{}{}
	}

	common := 0
	seen := make(map[string]struct{}, len(querySelections))
	for _, tag := range querySelections {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if _, ok := candidateSet[tag]; ok {
			common++
		}
	}

	return int(math.Round(float64(common) / scoreDenominator * 100))
}
