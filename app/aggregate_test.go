package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"artsdash/domain/survey"
	"artsdash/internal/testkit"
)

func gpaTable(t *testing.T, cells map[string][]string) *survey.Table {
	t.Helper()

	var headers []string
	for _, sem := range survey.SemesterColumns {
		headers = append(headers, sem.Column)
	}

	rowCount := 0
	for _, values := range cells {
		if len(values) > rowCount {
			rowCount = len(values)
		}
	}

	rows := make([][]string, rowCount)
	for i := range rows {
		row := make([]string, len(headers))
		for j, h := range headers {
			if values, ok := cells[h]; ok && i < len(values) {
				row[j] = values[i]
			}
		}
		rows[i] = row
	}

	return survey.NewTable("test://gpa", headers, rows)
}

func TestGPATrendCanonicalOrder(t *testing.T) {
	// Populate out-of-order semesters; output must follow canonical order
	table := gpaTable(t, map[string][]string{
		"3rd Year Semester 1": {"3.0", "4.0"},
		"1st Year Semester 1": {"2.0", "3.0"},
		"2nd Year Semester 2": {"3.5", "3.5"},
	})

	trend := GPATrend(table)

	tags := make([]string, len(trend))
	for i, p := range trend {
		tags[i] = p.Tag
	}
	assert.Equal(t, []string{"1Y S1", "2Y S2", "3Y S1"}, tags)
	assert.InDelta(t, 2.5, trend[0].Mean, 1e-9)
	assert.InDelta(t, 3.5, trend[1].Mean, 1e-9)
	assert.InDelta(t, 3.5, trend[2].Mean, 1e-9)
}

func TestGPATrendDropsAllMissingSemesters(t *testing.T) {
	table := gpaTable(t, map[string][]string{
		"1st Year Semester 1": {"3.0", "incomplete"},
		"1st Year Semester 2": {"", "n/a"},
	})

	trend := GPATrend(table)

	assert.Len(t, trend, 1)
	assert.Equal(t, "1Y S1", trend[0].Tag)
	assert.Equal(t, 1, trend[0].N)
}

func TestGPATrendAllNonNumericYieldsEmpty(t *testing.T) {
	cells := make(map[string][]string)
	for _, sem := range survey.SemesterColumns {
		cells[sem.Column] = []string{"withheld", "pending"}
	}

	assert.Empty(t, GPATrend(gpaTable(t, cells)))
}

func TestValueCountsGender(t *testing.T) {
	table := survey.NewTable("test://gender",
		[]string{survey.ColGender},
		[][]string{{"F"}, {"F"}, {"M"}},
	)

	counts := ValueCounts(table, survey.ColGender)

	assert.Equal(t, []ValueCount{{Value: "F", Count: 2}, {Value: "M", Count: 1}}, counts)
}

func TestValueCountsSumAndMissing(t *testing.T) {
	table := survey.NewTable("test://aspects",
		[]string{survey.ColBestAspect},
		[][]string{{"Professors"}, {""}, {"Teaching"}, {"  "}, {"Professors"}},
	)

	counts := ValueCounts(table, survey.ColBestAspect)

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	// Sum of counts equals the number of non-missing values
	assert.Equal(t, 3, total)
}

func TestValueCountsStableTies(t *testing.T) {
	table := survey.NewTable("test://ties",
		[]string{"Aspect"},
		[][]string{{"A"}, {"B"}, {"C"}, {"B"}, {"A"}, {"C"}},
	)

	counts := ValueCounts(table, "Aspect")

	// All tied at 2; first-appearance order must be preserved
	assert.Equal(t, []ValueCount{{"A", 2}, {"B", 2}, {"C", 2}}, counts)
}

func TestTopValueCountsTruncates(t *testing.T) {
	table := testkit.SampleTable()

	counts := TopValueCounts(table, survey.ColBestAspect, 1)

	assert.Len(t, counts, 1)
	assert.Equal(t, "Professors", counts[0].Value)
	assert.Equal(t, 2, counts[0].Count)
}

func TestExpectationComparison(t *testing.T) {
	table := testkit.SampleTable()

	groups := ExpectationComparison(table)

	assert.Len(t, groups, 2)
	assert.Equal(t, MetricInitialExpectation, groups[0].Metric)
	assert.Equal(t, MetricExpectationMet, groups[1].Metric)

	// Third respondent has a missing expectation operand and is dropped
	assert.Len(t, groups[0].Scores, 2)
	assert.InDelta(t, 4.0, groups[0].Scores[0], 1e-9)
	assert.InDelta(t, 3.5, groups[0].Scores[1], 1e-9)

	assert.Equal(t, []float64{5, 4, 3}, groups[1].Scores)
}

func TestBoxSummary(t *testing.T) {
	summary, err := BoxSummary([]float64{1, 2, 3, 4, 5})

	assert.NoError(t, err)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 3.0, summary.Median)
	assert.Equal(t, 5.0, summary.Max)
	assert.LessOrEqual(t, summary.Q1, summary.Median)
	assert.LessOrEqual(t, summary.Median, summary.Q3)

	_, err = BoxSummary(nil)
	assert.Error(t, err)
}

func TestImprovementByGender(t *testing.T) {
	table := testkit.SampleTable()

	long := ImprovementByGender(table)

	// Two groups times two questions, groups alphabetical
	assert.Len(t, long, 4)
	assert.Equal(t, "F", long[0].Group)
	assert.Equal(t, "M", long[2].Group)

	byKey := make(map[string]float64)
	for _, p := range long {
		byKey[p.Group+"/"+p.Question] = p.Proportion
		assert.GreaterOrEqual(t, p.Proportion, 0.0)
		assert.LessOrEqual(t, p.Proportion, 1.0)
	}
	assert.InDelta(t, 1.0, byKey["F/Quality of Education Improved"], 1e-9)
	assert.InDelta(t, 0.5, byKey["F/University Image Improved"], 1e-9)
	assert.InDelta(t, 0.0, byKey["M/Quality of Education Improved"], 1e-9)
	assert.InDelta(t, 1.0, byKey["M/University Image Improved"], 1e-9)
}

func TestImprovementCountsExactYesOnly(t *testing.T) {
	table := survey.NewTable("test://yes",
		[]string{survey.ColGender, survey.ColEducationImproved, survey.ColImageImproved},
		[][]string{
			{"F", "Yes", "YES"},
			{"F", "yes", "Maybe"},
			{"F", " Yes ", ""},
		},
	)

	long := ImprovementByGender(table)

	byQuestion := make(map[string]float64)
	for _, p := range long {
		byQuestion[p.Question] = p.Proportion
	}
	// "Yes" and " Yes " count; "yes", "YES" and "Maybe" do not
	assert.InDelta(t, 2.0/3.0, byQuestion["Quality of Education Improved"], 1e-9)
	assert.InDelta(t, 0.0, byQuestion["University Image Improved"], 1e-9)
}

func TestPolicyVsImplementation(t *testing.T) {
	table := testkit.SampleTable()

	means := PolicyVsImplementation(table)

	assert.Len(t, means, 2)
	assert.Equal(t, CategoryPolicy, means[0].Category)
	assert.Equal(t, CategoryImplementation, means[1].Category)
	assert.InDelta(t, 13.0/3.0, means[0].Mean, 1e-9)
	assert.InDelta(t, 13.0/3.0, means[1].Mean, 1e-9)
}

func TestProfileNumericColumns(t *testing.T) {
	table := testkit.SampleTable()

	profiles := ProfileNumericColumns(table)
	assert.NotEmpty(t, profiles)

	byColumn := make(map[string]ColumnProfile)
	for _, p := range profiles {
		byColumn[p.Column] = p
	}

	met := byColumn[survey.ColExpectationMet]
	assert.Equal(t, 3, met.N)
	assert.InDelta(t, 4.0, met.Mean, 1e-9)
	assert.Equal(t, 3.0, met.Min)
	assert.Equal(t, 5.0, met.Max)
	assert.False(t, math.IsNaN(met.StdDev))

	// The all-blank final semester stays visible with zero observations
	empty := byColumn["4th Year Semester 3"]
	assert.Equal(t, 0, empty.N)
	assert.Equal(t, 3, empty.Missing)
}
