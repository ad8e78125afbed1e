package cli

import (
	"strings"
	"testing"
)

func TestRenderMonth(t *testing.T) {
	percents := map[string]int{
		"2025-06-01": 100,
		"2025-06-02": 50,
		"2025-06-03": 25,
	}
	noted := map[string]bool{"2025-06-05": true}

	out := renderMonth("2025-06", "2025-06-02", percents, noted)

	if !strings.Contains(out, "June 2025") {
		t.Errorf("expected month heading, got:\n%s", out)
	}
	if !strings.Contains(out, " Mo  Tu  We  Th  Fr  Sa  Su") {
		t.Errorf("expected weekday header, got:\n%s", out)
	}
	// 2025-06-01 is a Sunday, so the first row should be padded six cells.
	if !strings.Contains(out, " 01●") {
		t.Errorf("expected full-completion glyph on the 1st, got:\n%s", out)
	}
	if !strings.Contains(out, ">02◐") {
		t.Errorf("expected today marker with half glyph, got:\n%s", out)
	}
	if !strings.Contains(out, " 03○") {
		t.Errorf("expected partial glyph on the 3rd, got:\n%s", out)
	}
	if !strings.Contains(out, " 05•") {
		t.Errorf("expected note marker on the 5th, got:\n%s", out)
	}
}

func TestRenderMonthLeadingOffset(t *testing.T) {
	out := renderMonth("2025-06", "2025-01-01", nil, nil)

	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got:\n%s", out)
	}
	// Sunday start means six empty cells before the 1st.
	if !strings.HasPrefix(lines[2], strings.Repeat("    ", 6)+" 01") {
		t.Errorf("expected six-cell offset before the 1st, got: %q", lines[2])
	}
}

func TestRenderMonthBadMonth(t *testing.T) {
	if out := renderMonth("not-a-month", "2025-01-01", nil, nil); out != "" {
		t.Errorf("expected empty output for invalid month, got: %q", out)
	}
}

func TestFillGlyph(t *testing.T) {
	cases := []struct {
		percent int
		want    string
	}{
		{0, " "},
		{1, "○"},
		{49, "○"},
		{50, "◐"},
		{99, "◐"},
		{100, "●"},
	}
	for _, tc := range cases {
		if got := fillGlyph(tc.percent); got != tc.want {
			t.Errorf("fillGlyph(%d) = %q, want %q", tc.percent, got, tc.want)
		}
	}
}
