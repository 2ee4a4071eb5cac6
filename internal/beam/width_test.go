package beam

import (
	"math"
	"testing"
)

func TestEffectiveWidthBendingTapersFromSupport(t *testing.T) {
	if got := EffectiveWidthBending(0, 8000, 2000); got != 0 {
		t.Errorf("width at support = %v, want 0", got)
	}
	if got, want := EffectiveWidthBending(4000, 8000, 2000), 2000.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("width at midspan = %v, want %v", got, want)
	}
	half := EffectiveWidthBending(500, 8000, 2000)
	if half <= 0 || half >= 2000 {
		t.Errorf("width near support should be strictly between 0 and full width, got %v", half)
	}
}

func TestEffectiveWidthMembraneStaysNarrowerNearSupport(t *testing.T) {
	x := 1500.0
	bending := EffectiveWidthBending(x, 8000, 2000)
	membrane := EffectiveWidthMembrane(x, 8000, 2000)
	if membrane > bending {
		t.Errorf("expected membrane width (%v) to stay at or below bending width (%v) near the support", membrane, bending)
	}
}
