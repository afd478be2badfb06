package survey

import (
	"fmt"
	"strings"

	"artsdash/internal/errors"
)

// FieldType describes the expected content of a schema field
type FieldType string

const (
	FieldCategorical FieldType = "categorical"
	FieldNumeric     FieldType = "numeric"
	FieldLikert      FieldType = "likert"
	FieldYesNo       FieldType = "yes_no"
	FieldFreeText    FieldType = "free_text"
)

// Field is one named column the dashboard depends on
type Field struct {
	Name string
	Type FieldType
}

// PrefixGroup is a family of columns addressed by shared prefix, with a
// minimum number of members required for the aggregates built on it.
type PrefixGroup struct {
	Prefix   string
	Type     FieldType
	MinCount int
}

// Schema is the explicit descriptor of the survey export. It is validated
// once at load time so a missing or misnamed column surfaces as a structured
// error instead of a downstream fault.
type Schema struct {
	Fields       []Field
	PrefixGroups []PrefixGroup
}

// DefaultSchema describes every column the dashboard aggregates read.
func DefaultSchema() Schema {
	fields := []Field{
		{Name: ColGender, Type: FieldCategorical},
		{Name: ColExpectationMet, Type: FieldLikert},
		{Name: ColBestAspect, Type: FieldFreeText},
		{Name: ColEducationImproved, Type: FieldYesNo},
		{Name: ColImageImproved, Type: FieldYesNo},
	}
	for _, col := range ExpectationColumns {
		fields = append(fields, Field{Name: col, Type: FieldLikert})
	}
	for _, sem := range SemesterColumns {
		fields = append(fields, Field{Name: sem.Column, Type: FieldNumeric})
	}

	return Schema{
		Fields: fields,
		PrefixGroups: []PrefixGroup{
			{Prefix: PrefixAreaEvaluation, Type: FieldLikert, MinCount: 1},
			{Prefix: PrefixItem, Type: FieldLikert, MinCount: 1},
		},
	}
}

// Validate checks the table headers against the schema and reports every
// missing field in a single error.
func (s Schema) Validate(t *Table) error {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}

	var missing []string
	for _, f := range s.Fields {
		if !present[f.Name] {
			missing = append(missing, f.Name)
		}
	}
	for _, g := range s.PrefixGroups {
		if len(t.ColumnsWithPrefix(g.Prefix)) < g.MinCount {
			missing = append(missing, fmt.Sprintf("%s* (need at least %d)", g.Prefix, g.MinCount))
		}
	}

	if len(missing) > 0 {
		return errors.SchemaInvalid(fmt.Sprintf("dataset is missing required columns: %s", strings.Join(missing, "; ")))
	}
	return nil
}
