package chart

// Kind is the chart type handed to the rendering host.
type Kind string

const (
	KindPie        Kind = "pie"
	KindLine       Kind = "line"
	KindBox        Kind = "box"
	KindBar        Kind = "bar"
	KindGroupedBar Kind = "grouped_bar"
)

// Series is one named sequence of (label, value) pairs within a chart.
type Series struct {
	// Name is the series display name (legend entry).
	Name string `json:"name,omitempty"`
	// Labels are the categorical positions, in plotting order.
	Labels []string `json:"labels"`
	// Values are the numeric values, aligned with Labels.
	Values []float64 `json:"values"`
}

// BoxStats are the five-number summary of one box plot group.
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Box is one group in a box plot.
type Box struct {
	// Name is the group display name.
	Name string `json:"name"`
	// Stats is the precomputed five-number summary.
	Stats BoxStats `json:"stats"`
	// N is the number of observations behind the summary.
	N int `json:"n"`
}

// Spec is a declarative chart specification. The server never renders; it
// hands specs to the page, which draws them client-side.
type Spec struct {
	// Name is the stable chart identifier used in API routes.
	Name string `json:"name"`
	// Kind is the chart type.
	Kind Kind `json:"kind"`
	// Title is the chart title.
	Title string `json:"title"`
	// Caption is the static interpretive text in markdown.
	Caption string `json:"caption,omitempty"`
	// XTitle is the X-axis title.
	XTitle string `json:"x_title,omitempty"`
	// YTitle is the Y-axis title.
	YTitle string `json:"y_title,omitempty"`
	// YRange is the Y-axis range [min, max] when fixed.
	YRange []float64 `json:"y_range,omitempty"`
	// Horizontal flips bar charts to horizontal orientation.
	Horizontal bool `json:"horizontal,omitempty"`
	// PercentAxis formats the Y axis as percentages.
	PercentAxis bool `json:"percent_axis,omitempty"`
	// Series holds the data for pie, line and bar kinds.
	Series []Series `json:"series,omitempty"`
	// Boxes holds the data for the box kind.
	Boxes []Box `json:"boxes,omitempty"`
}
