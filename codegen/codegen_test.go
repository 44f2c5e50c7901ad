package codegen

import "testing"

func TestStateText(t *testing.T) {
	s := NewState()
	s.Append("f")
	s.Append("(")
	s.Append("")
	s.Append("x")
	s.Append(")")

	if got := s.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4 (empty tokens dropped)", got)
	}
	if got := s.Text(); got != "f(x)" {
		t.Errorf("Text() = %q, want %q", got, "f(x)")
	}
}

func TestStateEmpty(t *testing.T) {
	s := NewState()
	if got := s.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}
