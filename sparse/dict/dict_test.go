package dict

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath"
)

func TestSpikes(t *testing.T) {
	atoms, err := Spikes(4)
	if err != nil {
		t.Fatal(err)
	}

	if len(atoms) != 4 {
		t.Fatalf("len = %d, want 4", len(atoms))
	}
	for j, col := range atoms {
		for i, v := range col {
			want := 0.0
			if i == j {
				want = 1
			}
			if v != want {
				t.Fatalf("atoms[%d][%d] = %v, want %v", j, i, v, want)
			}
		}
	}
}

func TestSpikesInvalidLength(t *testing.T) {
	if _, err := Spikes(0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Spikes(0) error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestCosinesValidation(t *testing.T) {
	tests := []struct {
		name     string
		n, count int
		wantErr  error
	}{
		{"valid", 8, 8, nil},
		{"zero length", 0, 4, ErrInvalidLength},
		{"zero count", 8, 0, ErrInvalidCount},
		{"negative count", 8, -1, ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cosines(tt.n, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Cosines(%d, %d) error = %v, want %v", tt.n, tt.count, err, tt.wantErr)
			}
		})
	}
}

func TestCosinesOrthonormal(t *testing.T) {
	atoms, err := Cosines(16, 16)
	if err != nil {
		t.Fatal(err)
	}

	for i := range atoms {
		norm := math.Sqrt(vecmath.DotProduct(atoms[i], atoms[i]))
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("atom %d norm = %v, want 1", i, norm)
		}
		for j := i + 1; j < len(atoms); j++ {
			dot := vecmath.DotProduct(atoms[i], atoms[j])
			if math.Abs(dot) > 1e-10 {
				t.Errorf("atoms %d and %d not orthogonal: dot = %g", i, j, dot)
			}
		}
	}
}

func TestGaborValidation(t *testing.T) {
	tests := []struct {
		name           string
		n, width, step int
		wantErr        error
	}{
		{"valid", 16, 8, 4, nil},
		{"zero length", 0, 8, 4, ErrInvalidLength},
		{"width too small", 16, 1, 4, ErrInvalidWidth},
		{"width exceeds length", 16, 32, 4, ErrInvalidWidth},
		{"zero step", 16, 8, 0, ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Gabor(tt.n, tt.width, tt.step)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Gabor(%d, %d, %d) error = %v, want %v", tt.n, tt.width, tt.step, err, tt.wantErr)
			}
		})
	}
}

func TestGaborGrid(t *testing.T) {
	atoms, err := Gabor(16, 8, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Offsets 0, 4, 8 each carry frequencies 0..4.
	if len(atoms) != 15 {
		t.Fatalf("len = %d, want 15", len(atoms))
	}

	for j, col := range atoms {
		if len(col) != 16 {
			t.Fatalf("atom %d length = %d, want 16", j, len(col))
		}
		norm := math.Sqrt(vecmath.DotProduct(col, col))
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("atom %d norm = %v, want 1", j, norm)
		}
	}
}

func TestGaborSupport(t *testing.T) {
	atoms, err := Gabor(16, 8, 8)
	if err != nil {
		t.Fatal(err)
	}

	// Second window starts at offset 8: nothing before it may be set.
	second := atoms[5]
	for i := 0; i < 8; i++ {
		if second[i] != 0 {
			t.Fatalf("atom sample %d = %v outside window support", i, second[i])
		}
	}
}
