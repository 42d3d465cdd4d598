package requirements

import (
	"math"
	"sort"
)

// Criteria holds the impact and effort tables used to rank features.
// Entries are per-feature; a feature missing from Impact scores 0 and a
// feature missing from Effort divides by 1.
type Criteria struct {
	Impact map[string]float64 `json:"impact" yaml:"impact"`
	Effort map[string]float64 `json:"effort" yaml:"effort"`
}

// FeaturePriority is a feature with its derived impact/effort score.
type FeaturePriority struct {
	Feature  string  `json:"feature" yaml:"feature"`
	Priority float64 `json:"priority" yaml:"priority"`
}

// Prioritize scores every feature occurrence and returns the list sorted by
// priority, highest first. The sort is stable: features with equal scores
// keep their relative input order.
//
// An effort entry explicitly present as 0 yields +Inf, ranking the feature
// ahead of everything with a finite score. Only missing entries default.
func Prioritize(features []string, criteria Criteria) []FeaturePriority {
	priorities := make([]FeaturePriority, 0, len(features))

	for _, feature := range features {
		impact := criteria.Impact[feature]
		effort, ok := criteria.Effort[feature]
		if !ok {
			effort = 1
		}

		priority := impact / effort
		if effort == 0 {
			priority = math.Inf(1)
		}

		priorities = append(priorities, FeaturePriority{
			Feature:  feature,
			Priority: priority,
		})
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].Priority > priorities[j].Priority
	})

	return priorities
}
