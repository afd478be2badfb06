package survey

import (
	"math"
	"strings"
	"testing"

	"artsdash/internal/errors"
)

func fullHeaders() []string {
	headers := []string{ColGender}
	for _, sem := range SemesterColumns {
		headers = append(headers, sem.Column)
	}
	headers = append(headers, ExpectationColumns...)
	headers = append(headers,
		ColExpectationMet,
		ColBestAspect,
		ColEducationImproved,
		ColImageImproved,
		"Area of Evaluation [Academic policies]",
		"Item [Teaching quality]",
	)
	return headers
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		expectError bool
		errContains string
	}{
		{
			name:    "complete headers pass",
			headers: fullHeaders(),
		},
		{
			name: "missing gender column",
			headers: func() []string {
				var headers []string
				for _, h := range fullHeaders() {
					if h != ColGender {
						headers = append(headers, h)
					}
				}
				return headers
			}(),
			expectError: true,
			errContains: ColGender,
		},
		{
			name: "missing prefix group",
			headers: func() []string {
				var headers []string
				for _, h := range fullHeaders() {
					if !strings.HasPrefix(h, PrefixItem) {
						headers = append(headers, h)
					}
				}
				return headers
			}(),
			expectError: true,
			errContains: "Item*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable("test://schema", tt.headers, nil)
			err := DefaultSchema().Validate(table)

			if !tt.expectError {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a schema error, got nil")
			}
			if code := errors.GetCode(err); code != errors.CodeSchemaInvalid {
				t.Errorf("expected code %s, got %s", errors.CodeSchemaInvalid, code)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to mention %q, got: %v", tt.errContains, err)
			}
		})
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		missing bool
	}{
		{raw: "3.5", want: 3.5},
		{raw: " 4 ", want: 4},
		{raw: "", missing: true},
		{raw: "   ", missing: true},
		{raw: "n/a", missing: true},
		{raw: "three", missing: true},
	}

	for _, tt := range tests {
		got := ParseCell(tt.raw)
		if tt.missing {
			if !math.IsNaN(got) {
				t.Errorf("ParseCell(%q) = %v, want NaN", tt.raw, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCell(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNewTableTrimsAndPadsRows(t *testing.T) {
	table := NewTable("test://rows",
		[]string{" Gender ", "Score"},
		[][]string{
			{" F ", " 3.5 "},
			{"M"}, // short row leaves Score unset
		},
	)

	if table.Headers[0] != "Gender" {
		t.Errorf("expected trimmed header, got %q", table.Headers[0])
	}
	if got := table.Rows[0]["Gender"]; got != "F" {
		t.Errorf("expected trimmed cell F, got %q", got)
	}
	if got := table.Rows[1]["Score"]; got != "" {
		t.Errorf("expected empty cell for short row, got %q", got)
	}
	if !math.IsNaN(table.NumericColumn("Score")[1]) {
		t.Error("expected NaN for unset numeric cell")
	}
}

func TestColumnsWithPrefix(t *testing.T) {
	table := NewTable("test://prefix",
		[]string{"Item [A]", "Gender", "Item [B]", "Itemize"},
		nil,
	)

	got := table.ColumnsWithPrefix("Item ")
	if len(got) != 2 || got[0] != "Item [A]" || got[1] != "Item [B]" {
		t.Errorf("unexpected prefix columns: %v", got)
	}
}
