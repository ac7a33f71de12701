package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"work", "3 windows", "attached"},
		{"s", "1 window", ""},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	want0 := "work  3 windows  attached"
	want1 := "s      1 window          "
	if got[0] != want0 {
		t.Fatalf("expected %q, got %q", want0, got[0])
	}
	if got[1] != want1 {
		t.Fatalf("expected %q, got %q", want1, got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %#v", got)
	}
}

func TestFormatUnevenRows(t *testing.T) {
	rows := [][]string{
		{"a"},
		{"bb", "c"},
	}
	got := Format(rows, []Alignment{AlignLeft})
	if got[0] != "a " {
		t.Fatalf("expected padded single cell, got %q", got[0])
	}
	if got[1] != "bb  c" {
		t.Fatalf("expected both cells, got %q", got[1])
	}
}
