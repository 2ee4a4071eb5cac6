// Package boundary computes the admissible curvature and neutral-axis range
// of a Crosssection, used to seed and clamp the equilibrium solvers.
package boundary

import (
	"math"

	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
)

// Anchor fixes one point of the strain distribution: strain Strain occurs
// at depth Z.
type Anchor struct {
	Z      float64
	Strain float64
}

// Candidate is one governing (curvature, depth) pair produced by
// MaximumCurvature.
type Candidate struct {
	Kappa float64
	Z     float64
}

// edgeLimits enumerates every (depth, strain-limit) pair across a
// Crosssection's sections: each section contributes its top and bottom
// edge paired with its material's tension and compression limits.
func edgeLimits(cs section.Crosssection) []Anchor {
	var out []Anchor
	for _, s := range cs {
		for _, z := range [2]float64{s.Geometry.Top(), s.Geometry.Bottom()} {
			out = append(out, Anchor{Z: z, Strain: s.Material.MaxStrain})
			out = append(out, Anchor{Z: z, Strain: s.Material.MinStrain})
		}
	}
	return out
}

// MaximumCurvature computes, given anchor (z0, eps0), the maximum positive
// and maximum negative curvature admissible before any section edge
// exceeds its material's strain limit. Ties are broken first by |kappa|,
// then by |z - z0| (the shallowest opposing limit governs).
func MaximumCurvature(cs section.Crosssection, anchor Anchor) (positive, negative Candidate, havePositive, haveNegative bool) {
	for _, lim := range edgeLimits(cs) {
		if lim.Z == anchor.Z {
			continue
		}
		kappa := (lim.Strain - anchor.Strain) / (lim.Z - anchor.Z)
		cand := Candidate{Kappa: kappa, Z: lim.Z}
		switch {
		case kappa > 0:
			if !havePositive || better(cand, positive, anchor.Z) {
				positive, havePositive = cand, true
			}
		case kappa < 0:
			if !haveNegative || better(cand, negative, anchor.Z) {
				negative, haveNegative = cand, true
			}
		}
	}
	return positive, negative, havePositive, haveNegative
}

// better reports whether candidate a should replace the current best b for
// its branch: the smaller |kappa| wins (the nearer-to-zero, more
// restrictive curvature), ties broken by the smaller |z - z0|.
func better(a, b Candidate, z0 float64) bool {
	da, db := math.Abs(a.Kappa), math.Abs(b.Kappa)
	if da != db {
		return da < db
	}
	return math.Abs(a.Z-z0) < math.Abs(b.Z-z0)
}

// NeutralAxisBounds computes, for a given non-zero curvature, the range of
// neutral-axis depths z_n for which every section edge's induced strain
// stays within its material's admissible range. kappa == 0 is degenerate
// (every z_n induces zero strain) and reports ok = false.
func NeutralAxisBounds(cs section.Crosssection, kappa float64) (low, high float64, ok bool) {
	if kappa == 0 {
		return 0, 0, false
	}
	low, high = math.Inf(-1), math.Inf(1)
	haveLow, haveHigh := false, false
	for _, s := range cs {
		for _, z := range [2]float64{s.Geometry.Top(), s.Geometry.Bottom()} {
			for _, bound := range [2]struct {
				strain  float64
				isUpper bool
			}{
				{s.Material.MaxStrain, false},
				{s.Material.MinStrain, true},
			} {
				zn := z - bound.strain/kappa
				isUpper := bound.isUpper
				if kappa < 0 {
					isUpper = !isUpper
				}
				if isUpper {
					if !haveHigh || zn < high {
						high, haveHigh = zn, true
					}
				} else {
					if !haveLow || zn > low {
						low, haveLow = zn, true
					}
				}
			}
		}
	}
	if !haveLow || !haveHigh {
		return 0, 0, false
	}
	return low, high, true
}
