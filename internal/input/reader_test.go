package input

import (
	"io"
	"testing"
)

func TestStringReader(t *testing.T) {
	r := NewStringReader("first\n", "second\n")

	line, err := r.ReadString('\n')
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	if line != "first\n" {
		t.Errorf("expected first line, got %q", line)
	}

	line, _ = r.ReadString('\n')
	if line != "second\n" {
		t.Errorf("expected second line, got %q", line)
	}

	if _, err := r.ReadString('\n'); err != io.EOF {
		t.Errorf("expected EOF after inputs exhausted, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase", "YES\n", true},
		{"whitespace around answer", "  y  \n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"empty line", "\n", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confirm(NewStringReader(tt.input)); got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfirmEOF(t *testing.T) {
	if Confirm(NewStringReader()) {
		t.Error("EOF should count as no")
	}
}
