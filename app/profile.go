package app

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"artsdash/domain/survey"
)

// ColumnProfile carries descriptive statistics for one numeric column of
// the loaded dataset.
type ColumnProfile struct {
	Column   string  `json:"column"`
	N        int     `json:"n"`
	Missing  int     `json:"missing"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Median   float64 `json:"median"`
	Max      float64 `json:"max"`
	Skewness float64 `json:"skewness"`
}

// ProfileNumericColumns profiles every numeric and Likert column the schema
// knows about, in schema order. Columns with no observations are reported
// with zero stats rather than dropped, so gaps stay visible.
func ProfileNumericColumns(t *survey.Table) []ColumnProfile {
	var profiles []ColumnProfile
	for _, column := range numericColumns(t) {
		profiles = append(profiles, profileColumn(t, column))
	}
	return profiles
}

func numericColumns(t *survey.Table) []string {
	var columns []string
	schema := survey.DefaultSchema()
	for _, f := range schema.Fields {
		if f.Type == survey.FieldNumeric || f.Type == survey.FieldLikert {
			columns = append(columns, f.Name)
		}
	}
	for _, g := range schema.PrefixGroups {
		columns = append(columns, t.ColumnsWithPrefix(g.Prefix)...)
	}
	return columns
}

func profileColumn(t *survey.Table, column string) ColumnProfile {
	raw := t.NumericColumn(column)

	var observed []float64
	for _, v := range raw {
		if !survey.IsMissing(v) {
			observed = append(observed, v)
		}
	}

	profile := ColumnProfile{
		Column:  column,
		N:       len(observed),
		Missing: len(raw) - len(observed),
	}
	if len(observed) == 0 {
		return profile
	}

	profile.Mean, _ = stats.Mean(observed)
	profile.Min, _ = stats.Min(observed)
	profile.Max, _ = stats.Max(observed)
	profile.Median, _ = stats.Median(observed)
	profile.StdDev = stat.StdDev(observed, nil)
	if len(observed) > 2 && profile.StdDev > 0 {
		profile.Skewness = stat.Skew(observed, nil)
	}

	return profile
}
