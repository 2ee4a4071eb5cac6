package curves

import (
	"context"
	"testing"

	"github.com/JohannesSchorr/M-N-Kappa/internal/geometry"
	"github.com/JohannesSchorr/M-N-Kappa/internal/material"
	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
	"github.com/JohannesSchorr/M-N-Kappa/internal/solver"
)

func steelRectangleCrosssection(t *testing.T) section.Crosssection {
	t.Helper()
	g, err := geometry.NewRectangle(0, 200, 0, 10)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	m, err := material.NewSteel(material.SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15, Role: material.RoleGirder})
	if err != nil {
		t.Fatalf("NewSteel: %v", err)
	}
	cs, err := section.NewCrosssection(section.New(g, m))
	if err != nil {
		t.Fatalf("NewCrosssection: %v", err)
	}
	return cs
}

func TestGenerateMKappaProducesMonotoneCurvatureOnEachBranch(t *testing.T) {
	cs := steelRectangleCrosssection(t)
	points, _ := GenerateMKappa(context.Background(), cs, 0, true, true, solver.Config{Tolerance: 1})
	if len(points) == 0 {
		t.Fatal("expected at least one point")
	}
	var lastPos, lastNeg float64
	havePos, haveNeg := false, false
	for _, p := range points {
		switch {
		case p.Kappa > 0:
			if havePos && p.Kappa <= lastPos {
				t.Errorf("positive branch not strictly increasing: %v after %v", p.Kappa, lastPos)
			}
			lastPos, havePos = p.Kappa, true
		case p.Kappa < 0:
			if haveNeg && p.Kappa <= lastNeg {
				t.Errorf("negative branch not strictly increasing: %v after %v", p.Kappa, lastNeg)
			}
			lastNeg, haveNeg = p.Kappa, true
		}
	}
}

func TestGenerateMKappaOnlyPositiveBranch(t *testing.T) {
	cs := steelRectangleCrosssection(t)
	points, _ := GenerateMKappa(context.Background(), cs, 0, true, false, solver.Config{Tolerance: 1})
	for _, p := range points {
		if p.Kappa < 0 {
			t.Errorf("expected no negative-branch points, got kappa = %v", p.Kappa)
		}
	}
}

func TestGenerateMNProducesBalancedForcePoints(t *testing.T) {
	a := steelRectangleCrosssection(t)
	b := steelRectangleCrosssection(t)
	points, _ := GenerateMN(a, b, solver.Config{Tolerance: 1})
	if len(points) == 0 {
		t.Fatal("expected at least one M-N point")
	}
}
