package app

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"artsdash/domain/chart"
	"artsdash/domain/survey"
	"artsdash/internal/errors"
)

// Display labels for the comparative aggregates
const (
	MetricInitialExpectation = "Average Initial Expectation"
	MetricExpectationMet     = "Expectation Met Score"

	CategoryPolicy         = "Academic/Administrative Policy"
	CategoryImplementation = "Specific Teaching/Support Items"
)

// improvementLabels shortens the yes/no question columns for chart axes.
var improvementLabels = map[string]string{
	survey.ColEducationImproved: "Quality of Education Improved",
	survey.ColImageImproved:     "University Image Improved",
}

// MetricScores is one long-form box plot group: a metric label and the
// per-respondent scores behind it.
type MetricScores struct {
	Metric string    `json:"metric"`
	Scores []float64 `json:"scores"`
}

// ExpectationComparison builds the two box plot groups: the row-wise mean of
// the Q1-Q4 expectation columns against the Q5 expectation-met score. A row
// with any missing expectation operand contributes no mean; a missing Q5
// cell contributes no met score.
func ExpectationComparison(t *survey.Table) []MetricScores {
	var meanExpectation []float64
	for _, row := range t.Rows {
		sum := 0.0
		complete := true
		for _, col := range survey.ExpectationColumns {
			v := survey.ParseCell(row[col])
			if survey.IsMissing(v) {
				complete = false
				break
			}
			sum += v
		}
		if complete {
			meanExpectation = append(meanExpectation, sum/float64(len(survey.ExpectationColumns)))
		}
	}

	var met []float64
	for _, v := range t.NumericColumn(survey.ColExpectationMet) {
		if !survey.IsMissing(v) {
			met = append(met, v)
		}
	}

	return []MetricScores{
		{Metric: MetricInitialExpectation, Scores: meanExpectation},
		{Metric: MetricExpectationMet, Scores: met},
	}
}

// BoxSummary computes the five-number summary of one score series.
func BoxSummary(scores []float64) (chart.BoxStats, error) {
	if len(scores) == 0 {
		return chart.BoxStats{}, errors.New(errors.CodeInternalError, "no scores to summarize")
	}

	min, _ := stats.Min(scores)
	max, _ := stats.Max(scores)
	median, _ := stats.Median(scores)
	q1, _ := stats.Percentile(scores, 25)
	q3, _ := stats.Percentile(scores, 75)

	return chart.BoxStats{Min: min, Q1: q1, Median: median, Q3: q3, Max: max}, nil
}

// GroupProportion is one long-form row of the proportion aggregate.
type GroupProportion struct {
	Group      string  `json:"group"`
	Question   string  `json:"question"`
	Proportion float64 `json:"proportion"`
}

// ImprovementByGender groups rows by Gender and computes, for each yes/no
// improvement question, the fraction of "Yes" answers over all rows in the
// group. Groups come out alphabetically, questions in declaration order.
func ImprovementByGender(t *survey.Table) []GroupProportion {
	type tally struct {
		yes  map[string]int
		size int
	}
	groups := make(map[string]*tally)

	for _, row := range t.Rows {
		gender := strings.TrimSpace(row[survey.ColGender])
		if gender == "" {
			continue
		}
		g, ok := groups[gender]
		if !ok {
			g = &tally{yes: make(map[string]int)}
			groups[gender] = g
		}
		g.size++
		for _, q := range survey.ImprovementColumns {
			// Only the exact "Yes" literal counts as an affirmative answer
			if strings.TrimSpace(row[q]) == "Yes" {
				g.yes[q]++
			}
		}
	}

	genders := make([]string, 0, len(groups))
	for gender := range groups {
		genders = append(genders, gender)
	}
	sort.Strings(genders)

	var result []GroupProportion
	for _, gender := range genders {
		g := groups[gender]
		for _, q := range survey.ImprovementColumns {
			result = append(result, GroupProportion{
				Group:      gender,
				Question:   improvementLabels[q],
				Proportion: float64(g.yes[q]) / float64(g.size),
			})
		}
	}

	return result
}

// CategoryMean is one bar of the policy vs implementation comparison.
type CategoryMean struct {
	Category string  `json:"category"`
	Mean     float64 `json:"mean"`
}

// PolicyVsImplementation averages the "Area of Evaluation" columns against
// the "Item" columns: per row the mean of the present ratings, then the mean
// over rows with at least one rating.
func PolicyVsImplementation(t *survey.Table) []CategoryMean {
	return []CategoryMean{
		{Category: CategoryPolicy, Mean: meanOfRowMeans(t, t.ColumnsWithPrefix(survey.PrefixAreaEvaluation))},
		{Category: CategoryImplementation, Mean: meanOfRowMeans(t, t.ColumnsWithPrefix(survey.PrefixItem))},
	}
}

func meanOfRowMeans(t *survey.Table, columns []string) float64 {
	var rowMeans []float64
	for _, row := range t.Rows {
		sum := 0.0
		n := 0
		for _, col := range columns {
			v := survey.ParseCell(row[col])
			if !survey.IsMissing(v) {
				sum += v
				n++
			}
		}
		if n > 0 {
			rowMeans = append(rowMeans, sum/float64(n))
		}
	}
	if len(rowMeans) == 0 {
		return 0
	}
	mean, _ := stats.Mean(rowMeans)
	return mean
}
