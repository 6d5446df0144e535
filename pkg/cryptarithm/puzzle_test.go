package cryptarithm

import (
	"errors"
	"testing"
)

func TestNewPuzzleValidation(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		op      Operator
		wantErr error
	}{
		{"classic", []string{"SEND", "MORE", "MONEY"}, OpAdd, nil},
		{"lowercase normalized", []string{"send", "more", "money"}, OpAdd, nil},
		{"single letter words", []string{"A", "A", "A"}, OpAdd, nil},
		{"too few words", []string{"AB"}, OpAdd, ErrInvalidPuzzle},
		{"two words", []string{"AB", "CD"}, OpAdd, ErrInvalidPuzzle},
		{"empty result", []string{"AB", "CD", ""}, OpAdd, ErrInvalidPuzzle},
		{"empty first operand", []string{"", "AB", "AB"}, OpAdd, ErrInvalidPuzzle},
		{"empty middle operand", []string{"AB", "", "CD"}, OpAdd, ErrInvalidPuzzle},
		{"digit in word", []string{"A1", "BB", "CC"}, OpAdd, ErrInvalidPuzzle},
		{"punctuation in word", []string{"A-B", "CC", "DD"}, OpAdd, ErrInvalidPuzzle},
		{"eleven letters", []string{"ABCDE", "FGHIJ", "KABCD"}, OpAdd, ErrInvalidPuzzle},
		{"exactly ten letters", []string{"ABCDE", "FGHIJ", "ABCDE"}, OpAdd, nil},
		{"bad operator", []string{"AB", "CD", "EF"}, Operator('-'), ErrUnsupportedOperator},
		{"multiply ok", []string{"AB", "CD", "EF"}, OpMultiply, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPuzzle(tt.words, tt.op)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewPuzzle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPuzzle() unexpected error: %v", err)
			}
			if p == nil {
				t.Fatal("NewPuzzle() returned nil puzzle")
			}
		})
	}
}

func TestPuzzleDerivedMetadata(t *testing.T) {
	p, err := NewPuzzle([]string{"SEND", "MORE", "MONEY"}, OpAdd)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.Columns(); got != 5 {
		t.Errorf("Columns() = %d, want 5", got)
	}
	// Default window: max word length times number of words.
	if got := p.Window(); got != 15 {
		t.Errorf("Window() = %d, want 15", got)
	}
	if got := p.Expression(); got != "SEND+MORE=MONEY" {
		t.Errorf("Expression() = %q", got)
	}
	if got := p.Result(); got != "MONEY" {
		t.Errorf("Result() = %q", got)
	}
	if got := len(p.Operands()); got != 2 {
		t.Errorf("len(Operands()) = %d, want 2", got)
	}

	// Discovery order: left to right over the word list.
	want := []rune{'S', 'E', 'N', 'D', 'M', 'O', 'R', 'Y'}
	got := p.Letters()
	if len(got) != len(want) {
		t.Fatalf("Letters() = %q, want %q", string(got), string(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Letters() = %q, want %q", string(got), string(want))
		}
	}
}

func TestParseOperator(t *testing.T) {
	if op, err := ParseOperator("+"); err != nil || op != OpAdd {
		t.Errorf("ParseOperator(+) = %v, %v", op, err)
	}
	if op, err := ParseOperator("*"); err != nil || op != OpMultiply {
		t.Errorf("ParseOperator(*) = %v, %v", op, err)
	}
	if _, err := ParseOperator("-"); !errors.Is(err, ErrUnsupportedOperator) {
		t.Errorf("ParseOperator(-) error = %v, want ErrUnsupportedOperator", err)
	}
}

func TestCandidates(t *testing.T) {
	p, err := NewPuzzle([]string{"SEND", "MORE", "MONEY"}, OpAdd)
	if err != nil {
		t.Fatal(err)
	}

	a := NewAssignment()
	// S and M lead words: zero is excluded for them.
	if s := p.Candidates('S', a); s.Has(0) || s.Count() != 9 {
		t.Errorf("Candidates(S) = %v", s.Values())
	}
	if s := p.Candidates('E', a); !s.Has(0) || s.Count() != 10 {
		t.Errorf("Candidates(E) = %v", s.Values())
	}

	// Bound digits disappear from every other letter's candidates.
	a.Bind('E', 5)
	if s := p.Candidates('N', a); s.Has(5) || s.Count() != 9 {
		t.Errorf("Candidates(N) after E=5: %v", s.Values())
	}
	if s := p.Candidates('S', a); s.Has(5) || s.Has(0) || s.Count() != 8 {
		t.Errorf("Candidates(S) after E=5: %v", s.Values())
	}
}
