package material

import "testing"

func TestNewRejectsMissingOrigin(t *testing.T) {
	_, err := New([]StrainStress{{Strain: -1, Stress: -10}, {Strain: 1, Stress: 10}}, RoleGirder, 0, 0)
	if err == nil {
		t.Fatal("expected error for curve missing the origin")
	}
}

func TestNewSortsAndDefaultsBounds(t *testing.T) {
	m, err := New([]StrainStress{
		{Strain: 1, Stress: 10},
		{Strain: 0, Stress: 0},
		{Strain: -1, Stress: -10},
	}, RoleGirder, 0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Points[0].Strain != -1 || m.Points[2].Strain != 1 {
		t.Errorf("expected points sorted ascending by strain, got %v", m.Points)
	}
	if m.MinStrain != -1 || m.MaxStrain != 1 {
		t.Errorf("expected bounds defaulted to curve extent, got [%v, %v]", m.MinStrain, m.MaxStrain)
	}
}

func TestStressAtInterpolatesLinearly(t *testing.T) {
	m, _ := New([]StrainStress{{Strain: -1, Stress: -10}, {Strain: 0, Stress: 0}, {Strain: 1, Stress: 10}}, RoleGirder, 0, 0)
	if got, want := m.StressAt(0.5), 5.0; got != want {
		t.Errorf("StressAt(0.5) = %v, want %v", got, want)
	}
	if got, want := m.StressAt(-0.5), -5.0; got != want {
		t.Errorf("StressAt(-0.5) = %v, want %v", got, want)
	}
}

func TestStressAtOutsideRangeIsZero(t *testing.T) {
	m, _ := New([]StrainStress{{Strain: -1, Stress: -10}, {Strain: 0, Stress: 0}, {Strain: 1, Stress: 10}}, RoleGirder, 0, 0)
	if got := m.StressAt(2); got != 0 {
		t.Errorf("StressAt(2) = %v, want 0", got)
	}
}

func TestFailedOutsideExplicitBounds(t *testing.T) {
	m, err := New([]StrainStress{{Strain: -1, Stress: -10}, {Strain: 0, Stress: 0}, {Strain: 1, Stress: 10}}, RoleGirder, -0.5, 0.5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.Failed(0.6) {
		t.Error("expected strain beyond MaxStrain to be failed")
	}
	if m.Failed(0.3) {
		t.Error("expected strain within bounds to not be failed")
	}
}

func TestStrainsBetweenIncludesBreakpointsAndEndpoints(t *testing.T) {
	m, _ := New([]StrainStress{{Strain: -2, Stress: -20}, {Strain: -1, Stress: -10}, {Strain: 0, Stress: 0}, {Strain: 1, Stress: 10}}, RoleGirder, 0, 0)
	got := m.StrainsBetween(-1.5, 0.5)
	want := []float64{-1.5, -1, 0, 0.5}
	if len(got) != len(want) {
		t.Fatalf("StrainsBetween = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StrainsBetween[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
