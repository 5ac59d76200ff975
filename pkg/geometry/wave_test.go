package geometry

import (
	"math"
	"testing"
)

func TestWaveOffset_Deterministic(t *testing.T) {
	for i := 1; i <= 50; i++ {
		a := WaveOffset(i, 4, 1.3)
		b := WaveOffset(i, 4, 1.3)
		if a != b {
			t.Fatalf("WaveOffset(%d) not deterministic: %v != %v", i, a, b)
		}
	}
}

func TestWaveOffset_Bound(t *testing.T) {
	// variation is bounded by 0.3+0.2+0.25, so the offset must stay
	// inside [-0.25*amplitude, 1.25*amplitude].
	amplitudes := []float64{0, 1, 4, 12.5}
	seeds := []float64{0, 1.3, 2.7, 3.9, 4.6, 100}

	for _, amp := range amplitudes {
		for _, seed := range seeds {
			for i := 1; i <= 200; i++ {
				got := WaveOffset(i, amp, seed)
				if got < -0.25*amp-1e-9 || got > 1.25*amp+1e-9 {
					t.Fatalf("WaveOffset(%d, %v, %v) = %v, outside [%v, %v]",
						i, amp, seed, got, -0.25*amp, 1.25*amp)
				}
			}
		}
	}
}

func TestWaveOffset_ZeroAmplitude(t *testing.T) {
	for i := 1; i <= 20; i++ {
		if got := WaveOffset(i, 0, 1.3); got != 0 {
			t.Fatalf("WaveOffset(%d, 0, 1.3) = %v, want 0", i, got)
		}
	}
}

func TestWaveOffset_SeedsDiffer(t *testing.T) {
	// Different seeds should not produce the same wiggle pattern.
	same := true
	for i := 1; i <= 10; i++ {
		if math.Abs(WaveOffset(i, 4, 1.3)-WaveOffset(i, 4, 3.9)) > 1e-9 {
			same = false
			break
		}
	}
	if same {
		t.Error("offsets for different seeds are identical")
	}
}
