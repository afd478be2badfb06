package app

import (
	"github.com/montanaflynn/stats"

	"artsdash/domain/survey"
)

// SemesterMean is one point of the GPA trend: a compact semester tag and the
// mean GPA of the students who reported that semester.
type SemesterMean struct {
	Tag  string  `json:"tag"`
	Mean float64 `json:"mean"`
	N    int     `json:"n"`
}

// GPATrend computes the mean GPA per semester in canonical semester order.
// Non-numeric cells count as missing; a semester whose values are all
// missing is dropped, so an all-text column set yields an empty trend.
func GPATrend(t *survey.Table) []SemesterMean {
	trend := make([]SemesterMean, 0, len(survey.SemesterColumns))

	for _, sem := range survey.SemesterColumns {
		if !t.HasColumn(sem.Column) {
			continue
		}

		var observed []float64
		for _, v := range t.NumericColumn(sem.Column) {
			if !survey.IsMissing(v) {
				observed = append(observed, v)
			}
		}
		if len(observed) == 0 {
			continue
		}

		mean, err := stats.Mean(observed)
		if err != nil {
			continue
		}
		trend = append(trend, SemesterMean{Tag: sem.Tag, Mean: mean, N: len(observed)})
	}

	return trend
}
