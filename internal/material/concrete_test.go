package material

import (
	"math"
	"testing"
)

func TestNewConcreteRejectsNonPositiveFcm(t *testing.T) {
	if _, err := NewConcrete(ConcreteConfig{Fcm: 0}); err == nil {
		t.Error("expected error for non-positive Fcm")
	}
}

func TestNewConcreteNonlinearPeakStress(t *testing.T) {
	m, err := NewConcrete(ConcreteConfig{Fcm: 38, CompressionStressStrainType: Nonlinear, Role: RoleSlab})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	peakStrain := 0.0
	peakStress := 0.0
	for _, p := range m.Points {
		if p.Stress < peakStress {
			peakStress, peakStrain = p.Stress, p.Strain
		}
	}
	if math.Abs(peakStress+38) > 0.5 {
		t.Errorf("expected peak stress near -38, got %v at strain %v", peakStress, peakStrain)
	}
}

func TestNewConcreteParabolaHasPlateau(t *testing.T) {
	m, err := NewConcrete(ConcreteConfig{Fcm: 30, CompressionStressStrainType: Parabola})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	if got := m.StressAt(-0.0035); math.Abs(got+30) > 1e-9 {
		t.Errorf("expected plateau stress -30 at ultimate strain, got %v", got)
	}
}

func TestNewConcreteWithoutTensionUsesSentinel(t *testing.T) {
	m, err := NewConcrete(ConcreteConfig{Fcm: 30, UseTension: false})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	if m.MaxStrain != noTensionStrain {
		t.Errorf("expected MaxStrain = %v, got %v", noTensionStrain, m.MaxStrain)
	}
}

func TestNewConcreteTensionOpeningBehaviourSoftens(t *testing.T) {
	m, err := NewConcrete(ConcreteConfig{
		Fcm: 30, UseTension: true, TensionStressStrainType: TensionConsiderOpeningBehaviour,
	})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	peak := 0.0
	for _, p := range m.Points {
		if p.Stress > peak {
			peak = p.Stress
		}
	}
	if peak <= 0 {
		t.Fatal("expected a positive tension peak")
	}
	// stress must return to zero well past the peak (crack fully opened).
	if got := m.StressAt(m.MaxStrain - 1e-9); got > 1e-6 {
		t.Errorf("expected near-zero stress at MaxStrain, got %v", got)
	}
}
