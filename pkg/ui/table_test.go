package ui

import (
	"strings"
	"testing"
)

func TestTableFitWidths(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "Slug", Width: 20},
		{Header: "Title", Width: 40},
		{Header: "Category", Width: 12},
	})
	table.MaxWidth = 60

	widths := []int{20, 40, 12}
	table.fitWidths(widths)

	total := widths[0] + widths[1] + widths[2] + 4
	if total > 60 {
		t.Errorf("total width = %d, want <= 60", total)
	}
	// Only the widest column shrinks
	if widths[0] != 20 || widths[2] != 12 {
		t.Errorf("narrow columns changed: %v", widths)
	}
	if widths[1] >= 40 {
		t.Errorf("widest column did not shrink: %v", widths)
	}
}

func TestTableFitWidthsRespectsMinimum(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "A", Width: 8},
		{Header: "B", Width: 8},
	})
	table.MaxWidth = 5

	widths := []int{8, 8}
	table.fitWidths(widths)

	for i, w := range widths {
		if w < 6 {
			t.Errorf("column %d shrank to %d, below the minimum", i, w)
		}
	}
}

func TestTableFitWidthsZeroMeansUnbounded(t *testing.T) {
	table := NewTable([]TableColumn{{Header: "Title", Width: 50}})

	widths := []int{50}
	table.fitWidths(widths)
	if widths[0] != 50 {
		t.Errorf("width changed with MaxWidth unset: %d", widths[0])
	}
}

func TestPadStringTruncates(t *testing.T) {
	got := padString("a very long project title", 10, "left")
	if len([]rune(got)) != 10 {
		t.Errorf("truncated cell is %d runes, want 10: %q", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated cell missing ellipsis: %q", got)
	}
}

func TestTableRenderCapsRowContent(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "Title", Width: 10},
	})
	table.MaxWidth = 10
	table.AddRow([]string{"an overly descriptive project title"})

	out := table.Render()
	if strings.Contains(out, "an overly descriptive project title") {
		t.Error("row cell was not truncated")
	}
	if !strings.Contains(out, "…") {
		t.Error("truncated cell missing ellipsis")
	}
}
