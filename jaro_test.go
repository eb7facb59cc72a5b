package stringdist

import (
	"math"
	"testing"
)

func TestJaroWinkler_Basic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		p        float64
		expected float64
	}{
		{"martha marhta", "martha", "marhta", 0, 1 - 17.0/18},
		{"martha marhta winkler", "martha", "marhta", 0.1, (1 - 17.0/18) * (1 - 3*0.1)},
		{"dwayne duane", "dwayne", "duane", 0, 1 - 37.0/45},
		{"dwayne duane winkler", "dwayne", "duane", 0.1, (1 - 37.0/45) * 0.9},
		{"identical", "same", "same", 0, 0},
		{"single identical", "a", "a", 0, 0},
		{"single different", "a", "b", 0, 1},
		{"both empty", "", "", 0, 0},
		{"one empty", "", "abc", 0, 1},
		{"other empty", "abc", "", 0, 1},
		{"no matches", "abc", "xyz", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.P = tt.p
			got := dist(t, tt.a, tt.b, JaroWinkler, opts)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("jw(%q, %q, p=%v) = %v, want %v", tt.a, tt.b, tt.p, got, tt.expected)
			}
		})
	}
}

// The caller-facing weight order is (weight on a, weight on b,
// transposition); the dispatcher permutes it into the kernel's order. A
// mistake here flips which operand a weight applies to, so pin the net
// semantics to the written-out formula.
func TestJaroWinkler_WeightOrder(t *testing.T) {
	opts := DefaultOptions()
	opts.Weights = []float64{0.5, 1, 1, 1}

	// a="martha" (m=6, la=6), b="marhta" (lb=6), t=1.
	want := 1 - (0.5*1.0+1*1.0+1*(5.0/6))/3
	got := dist(t, "martha", "marhta", JaroWinkler, opts)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("jw asymmetric weights = %v, want %v", got, want)
	}

	// Unequal lengths make the two per-string terms differ, so a swapped
	// pair of weights must equal swapping the operands instead.
	opts.Weights = []float64{0.5, 0.9, 1, 1}
	ab := dist(t, "dwayne", "duane", JaroWinkler, opts)
	opts.Weights = []float64{0.9, 0.5, 1, 1}
	ba := dist(t, "duane", "dwayne", JaroWinkler, opts)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("jw weight/operand swap mismatch: %v vs %v", ab, ba)
	}
}

func TestJaroWinkler_PrefixCappedAtFour(t *testing.T) {
	opts := DefaultOptions()
	opts.P = 0.25
	// Eight shared leading units, but only four may count.
	a, b := "prefixesXX", "prefixesYY"
	got := dist(t, a, b, JaroWinkler, opts)

	plain := DefaultOptions()
	base := dist(t, a, b, JaroWinkler, plain)
	want := base * (1 - 4*0.25)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("jw prefix cap: got %v, want %v", got, want)
	}
	if got != 0 {
		t.Errorf("jw with p=0.25 and full prefix = %v, want 0", got)
	}
}

func TestJaroWinkler_MaxDist(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDist = 0.1
	if got := dist(t, "abc", "xyz", JaroWinkler, opts); !math.IsInf(got, 1) {
		t.Errorf("jw over cap = %v, want +Inf", got)
	}
	if got := dist(t, "same", "same", JaroWinkler, opts); got != 0 {
		t.Errorf("jw under cap = %v, want 0", got)
	}
}
