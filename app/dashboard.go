package app

import (
	"context"

	"artsdash/domain/chart"
	"artsdash/domain/survey"
	"artsdash/internal/errors"
)

// Stable chart identifiers used by the API routes
const (
	ChartGender        = "gender"
	ChartGPATrend      = "gpa-trend"
	ChartExpectation   = "expectation"
	ChartBestAspects   = "best-aspects"
	ChartImprovement   = "improvement"
	ChartPolicyVsItems = "policy-vs-items"
)

// Static interpretive captions attached to each chart panel. These are
// editorial content, not computed from the data.
const (
	captionGender = "The people who took this survey are mostly women, making up about 76% of the total. " +
		"This means the overall results mainly reflect the female students' experience in the faculty. " +
		"So, the opinions of male students are less represented in this feedback."
	captionGPATrend = "Student grades are very consistent over their four years, never going up or down much. " +
		"This shows a stable academic environment where students maintain a steady performance level. " +
		"The faculty's grading seems predictable, and students aren't facing sudden difficulty changes."
	captionExpectation = "The faculty has done a great job which is the students felt their initial hopes and " +
		"expectations were met and then some. They were already optimistic coming in, but the program delivered " +
		"even slightly better than expected. This is a very positive sign that the faculty is successfully " +
		"living up to its promises."
	captionBestAspects = "The best things about this program are the professors and the way they teach. " +
		"These two factors are the program's biggest strengths according to the students. Everything else, " +
		"like resources or facilities, is seen as much less important than the quality of the teaching staff."
	captionImprovement = "Men and women see the university's progress differently. More men think the quality " +
		"of education is getting better, while more women think the university's reputation is improving. " +
		"This highlights that the two groups are noticing and prioritizing different types of positive " +
		"changes at the university."
	captionPolicyVsItems = "Students approve of the written rules and plans (policies) more than they approve " +
		"of how those rules are carried out in reality. There's a small gap here. The university should focus " +
		"on improving the delivery of day-to-day things, like better resources or facilities, to match the " +
		"quality of its policies."
)

// MetricTile is one headline number at the top of the dashboard.
type MetricTile struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Help  string `json:"help"`
}

// DashboardView is everything one page render needs: tiles, raw preview and
// the chart specs, built fresh from the cached dataset on every request.
type DashboardView struct {
	Title          string       `json:"title"`
	Tiles          []MetricTile `json:"tiles,omitempty"`
	PreviewHeaders []string     `json:"preview_headers,omitempty"`
	PreviewRows    [][]string   `json:"preview_rows,omitempty"`
	RowCount       int          `json:"row_count"`
	Charts         []chart.Spec `json:"charts"`
}

// DashboardService assembles dashboard views from the loaded dataset.
type DashboardService struct {
	loader      *LoaderService
	locator     string
	previewRows int
}

// NewDashboardService creates a dashboard service bound to one locator.
func NewDashboardService(loader *LoaderService, locator string, previewRows int) *DashboardService {
	if previewRows <= 0 {
		previewRows = 10
	}
	return &DashboardService{
		loader:      loader,
		locator:     locator,
		previewRows: previewRows,
	}
}

// Load exposes the underlying dataset load for handlers that need the table.
func (s *DashboardService) Load(ctx context.Context) (*survey.Table, error) {
	return s.loader.Load(ctx, s.locator)
}

// Dashboard builds the full survey analysis view: PLO tiles, data preview
// and all six chart panels.
func (s *DashboardService) Dashboard(ctx context.Context) (*DashboardView, error) {
	table, err := s.loader.Load(ctx, s.locator)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Title: "Arts Faculty Student Survey Analysis",
		// Program Learning Outcome placeholder values, not derived from
		// the dataset
		Tiles: []MetricTile{
			{Label: "PLO 2", Value: "3.3", Help: "PLO 2: Cognitive Skill"},
			{Label: "PLO 3", Value: "3.5", Help: "PLO 3: Digital Skill"},
			{Label: "PLO 4", Value: "4.0", Help: "PLO 4: Interpersonal Skill"},
			{Label: "PLO 5", Value: "4.3", Help: "PLO 5: Communication Skill"},
		},
		PreviewHeaders: table.Headers,
		PreviewRows:    table.Preview(s.previewRows),
		RowCount:       len(table.Rows),
		Charts: []chart.Spec{
			buildGenderChart(table),
			buildGPATrendChart(table),
			buildExpectationChart(table),
			buildBestAspectsChart(table),
			buildImprovementChart(table),
			buildPolicyVsItemsChart(table),
		},
	}, nil
}

// GenderView builds the standalone gender distribution page.
func (s *DashboardService) GenderView(ctx context.Context) (*DashboardView, error) {
	table, err := s.loader.Load(ctx, s.locator)
	if err != nil {
		return nil, err
	}

	spec := buildGenderChart(table)
	spec.Title = "Distribution of Gender in Arts Faculty"

	return &DashboardView{
		Title:          "Arts Faculty Data: Gender Distribution",
		PreviewHeaders: table.Headers,
		PreviewRows:    table.Preview(s.previewRows),
		RowCount:       len(table.Rows),
		Charts:         []chart.Spec{spec},
	}, nil
}

// Chart builds a single chart spec by name.
func (s *DashboardService) Chart(ctx context.Context, name string) (*chart.Spec, error) {
	table, err := s.loader.Load(ctx, s.locator)
	if err != nil {
		return nil, err
	}

	var spec chart.Spec
	switch name {
	case ChartGender:
		spec = buildGenderChart(table)
	case ChartGPATrend:
		spec = buildGPATrendChart(table)
	case ChartExpectation:
		spec = buildExpectationChart(table)
	case ChartBestAspects:
		spec = buildBestAspectsChart(table)
	case ChartImprovement:
		spec = buildImprovementChart(table)
	case ChartPolicyVsItems:
		spec = buildPolicyVsItemsChart(table)
	default:
		return nil, errors.NotFound("chart " + name)
	}
	return &spec, nil
}

func buildGenderChart(t *survey.Table) chart.Spec {
	counts := ValueCounts(t, survey.ColGender)

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		values[i] = float64(c.Count)
	}

	return chart.Spec{
		Name:    ChartGender,
		Kind:    chart.KindPie,
		Title:   "Gender Distribution in Arts Faculty",
		Caption: captionGender,
		Series:  []chart.Series{{Name: "Gender", Labels: labels, Values: values}},
	}
}

func buildGPATrendChart(t *survey.Table) chart.Spec {
	trend := GPATrend(t)

	labels := make([]string, len(trend))
	values := make([]float64, len(trend))
	for i, p := range trend {
		labels[i] = p.Tag
		values[i] = p.Mean
	}

	return chart.Spec{
		Name:    ChartGPATrend,
		Kind:    chart.KindLine,
		Title:   "Mean GPA Trend Across Academic Semesters (Arts Faculty)",
		Caption: captionGPATrend,
		XTitle:  "Semester",
		YTitle:  "Mean GPA",
		Series:  []chart.Series{{Name: "Mean GPA", Labels: labels, Values: values}},
	}
}

func buildExpectationChart(t *survey.Table) chart.Spec {
	groups := ExpectationComparison(t)

	boxes := make([]chart.Box, 0, len(groups))
	for _, g := range groups {
		summary, err := BoxSummary(g.Scores)
		if err != nil {
			continue
		}
		boxes = append(boxes, chart.Box{Name: g.Metric, Stats: summary, N: len(g.Scores)})
	}

	return chart.Spec{
		Name:    ChartExpectation,
		Kind:    chart.KindBox,
		Title:   "Comparison of Initial Expectation and Expectation Met Score",
		Caption: captionExpectation,
		XTitle:  "Metric",
		YTitle:  "Score (1-5 Scale)",
		YRange:  []float64{1, 5.2},
		Boxes:   boxes,
	}
}

func buildBestAspectsChart(t *survey.Table) chart.Spec {
	counts := TopValueCounts(t, survey.ColBestAspect, 5)

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		values[i] = float64(c.Count)
	}

	return chart.Spec{
		Name:       ChartBestAspects,
		Kind:       chart.KindBar,
		Title:      "Top 5 Best Aspects of the Program (According to Students)",
		Caption:    captionBestAspects,
		XTitle:     "Number of Responses",
		YTitle:     "Best Aspect",
		Horizontal: true,
		Series:     []chart.Series{{Name: "Responses", Labels: labels, Values: values}},
	}
}

func buildImprovementChart(t *survey.Table) chart.Spec {
	long := ImprovementByGender(t)

	// One series per gender group, aligned on question labels
	series := make([]chart.Series, 0, 2)
	index := make(map[string]int)
	for _, p := range long {
		i, ok := index[p.Group]
		if !ok {
			i = len(series)
			index[p.Group] = i
			series = append(series, chart.Series{Name: p.Group})
		}
		series[i].Labels = append(series[i].Labels, p.Question)
		series[i].Values = append(series[i].Values, p.Proportion)
	}

	return chart.Spec{
		Name:        ChartImprovement,
		Kind:        chart.KindGroupedBar,
		Title:       "Perception of University Improvement: By Gender",
		Caption:     captionImprovement,
		XTitle:      "Improvement Area",
		YTitle:      `Proportion of Respondents who answered "Yes"`,
		YRange:      []float64{0, 1},
		PercentAxis: true,
		Series:      series,
	}
}

func buildPolicyVsItemsChart(t *survey.Table) chart.Spec {
	means := PolicyVsImplementation(t)

	labels := make([]string, len(means))
	values := make([]float64, len(means))
	for i, m := range means {
		labels[i] = m.Category
		values[i] = m.Mean
	}

	return chart.Spec{
		Name:    ChartPolicyVsItems,
		Kind:    chart.KindBar,
		Title:   "Average Student Rating: Policy vs. Implementation Items (Scale: 1-5)",
		Caption: captionPolicyVsItems,
		XTitle:  "Survey Category",
		YTitle:  "Mean Rating Score",
		YRange:  []float64{3.5, 5.0},
		Series:  []chart.Series{{Name: "Mean Rating", Labels: labels, Values: values}},
	}
}
