package app

import (
	"sort"
	"strings"

	"artsdash/domain/survey"
)

// ValueCount is one (category, count) pair of a count aggregate.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts counts the distinct non-blank values of one column, sorted by
// descending count. The sort is stable: ties keep first-appearance order.
func ValueCounts(t *survey.Table, column string) []ValueCount {
	counts := make(map[string]int)
	var order []string

	for _, raw := range t.Column(column) {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	result := make([]ValueCount, 0, len(order))
	for _, value := range order {
		result = append(result, ValueCount{Value: value, Count: counts[value]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

// TopValueCounts truncates ValueCounts to the n most frequent values.
func TopValueCounts(t *survey.Table, column string, n int) []ValueCount {
	counts := ValueCounts(t, column)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
