package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	err := fmt.Errorf("habit not found: abc")
	want := "Error: habit not found: abc"
	if got := Format(err); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("invalid date %q", "2024-13-01")
	want := `Error: invalid date "2024-13-01"`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
