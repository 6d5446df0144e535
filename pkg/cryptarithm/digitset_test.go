package cryptarithm

import "testing"

func TestAllDigits(t *testing.T) {
	s := AllDigits()
	if s.Count() != 10 {
		t.Errorf("Count() = %d, want 10", s.Count())
	}
	for d := 0; d <= 9; d++ {
		if !s.Has(d) {
			t.Errorf("AllDigits should contain %d", d)
		}
	}
	if s.Has(-1) || s.Has(10) {
		t.Error("out-of-range digits must never be members")
	}
}

func TestDigitSetAddRemove(t *testing.T) {
	tests := []struct {
		name  string
		build func() DigitSet
		want  []int
	}{
		{"empty", func() DigitSet { return 0 }, []int{}},
		{"add one", func() DigitSet { return DigitSet(0).Add(7) }, []int{7}},
		{"add duplicate", func() DigitSet { return DigitSet(0).Add(3).Add(3) }, []int{3}},
		{"remove present", func() DigitSet { return AllDigits().Remove(0).Remove(9) }, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"remove absent", func() DigitSet { return DigitSet(0).Add(1).Remove(2) }, []int{1}},
		{"add out of range", func() DigitSet { return DigitSet(0).Add(10).Add(-1) }, []int{}},
		{"without", func() DigitSet { return AllDigits().Without(DigitSet(0).Add(2).Add(4).Add(6).Add(8).Add(0)) }, []int{1, 3, 5, 7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().Values()
			if len(got) != len(tt.want) {
				t.Fatalf("Values() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Values() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDigitSetIterateAscending(t *testing.T) {
	s := DigitSet(0).Add(9).Add(0).Add(5)
	var got []int
	s.IterateValues(func(d int) { got = append(got, d) })
	want := []int{0, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("iterated %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("iterated %v, want %v (ascending order required)", got, want)
		}
	}
}
