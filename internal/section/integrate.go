package section

import (
	"sort"

	"github.com/JohannesSchorr/M-N-Kappa/internal/geometry"
)

// linearSlice is one z-range over which both stress and width vary linearly
// with depth: sigma(z) = p*z + q, width(z) = m*z + c.
type linearSlice struct {
	z0, z1 float64
	p, q   float64
	m, c   float64
}

// resultants returns the axial force and moment-about-z=0 contributed by a
// linear-in-z stress and width over [z0, z1], via the closed-form cubic
// (N) and quartic (M) antiderivatives of (p*z+q)(m*z+c) and its z-weighted
// counterpart.
func (s linearSlice) resultants() (n, m float64) {
	z0, z1 := s.z0, s.z1
	if z1 < z0 {
		z0, z1 = z1, z0
	}
	z0sq, z1sq := z0*z0, z1*z1
	z0cb, z1cb := z0sq*z0, z1sq*z1
	z0qd, z1qd := z0sq*z0sq, z1sq*z1sq

	p, q, mm, c := s.p, s.q, s.m, s.c

	n = p*mm/3*(z1cb-z0cb) + (p*c+q*mm)/2*(z1sq-z0sq) + q*c*(z1-z0)
	m = p*mm/4*(z1qd-z0qd) + (p*c+q*mm)/3*(z1cb-z0cb) + q*c/2*(z1sq-z0sq)
	return n, m
}

// ConstantStrainResultants integrates a uniform strain epsilon0 across the
// section, used for the kappa=0 branch of an M-N-kappa analysis and for
// pure axial sub-problems.
func (s Section) ConstantStrainResultants(epsilon0 float64) (n, m float64) {
	if circle, ok := s.Geometry.(geometry.Circle); ok {
		sigma := s.Material.StressAt(epsilon0)
		n = sigma * circle.Area()
		return n, n * circle.CentroidZ
	}
	sigma := s.Material.StressAt(epsilon0)
	z0, z1 := s.Geometry.Top(), s.Geometry.Bottom()
	slice := linearSlice{z0: z0, z1: z1, p: 0, q: sigma}
	slice.m, slice.c = widthLine(s.Geometry, z0, z1)
	return slice.resultants()
}

// CurvatureResultants integrates strain(z) = kappa*(z-zNeutral) across the
// section, splitting the depth range at every material stress-strain
// breakpoint the strain distribution crosses so each sub-slice sees a
// single linear stress segment.
func (s Section) CurvatureResultants(kappa, zNeutral float64) (n, m float64) {
	if kappa == 0 {
		return s.ConstantStrainResultants(0)
	}
	if circle, ok := s.Geometry.(geometry.Circle); ok {
		eps := kappa * (circle.CentroidZ - zNeutral)
		sigma := s.Material.StressAt(eps)
		n = sigma * circle.Area()
		return n, n * circle.CentroidZ
	}

	z0, z1 := s.Geometry.Top(), s.Geometry.Bottom()
	eps0 := kappa * (z0 - zNeutral)
	eps1 := kappa * (z1 - zNeutral)
	lo, hi := eps0, eps1
	if lo > hi {
		lo, hi = hi, lo
	}
	breakStrains := s.Material.StrainsBetween(lo, hi)

	zAt := func(eps float64) float64 { return zNeutral + eps/kappa }
	breakZ := make([]float64, len(breakStrains))
	for i, eps := range breakStrains {
		breakZ[i] = zAt(eps)
	}
	sort.Float64s(breakZ)
	if len(breakZ) == 0 || breakZ[0] > z0 {
		breakZ = append([]float64{z0}, breakZ...)
	}
	if breakZ[len(breakZ)-1] < z1 {
		breakZ = append(breakZ, z1)
	}

	for i := 0; i+1 < len(breakZ); i++ {
		a, b := breakZ[i], breakZ[i+1]
		if b-a < 1e-12 {
			continue
		}
		epsA := kappa * (a - zNeutral)
		epsB := kappa * (b - zNeutral)
		sigmaA := s.Material.StressAt(epsA)
		sigmaB := s.Material.StressAt(epsB)
		var p, q float64
		if b != a {
			p = (sigmaB - sigmaA) / (b - a)
		}
		q = sigmaA - p*a

		slice := linearSlice{z0: a, z1: b, p: p, q: q}
		slice.m, slice.c = widthLine(s.Geometry, a, b)
		sn, sm := slice.resultants()
		n += sn
		m += sm
	}
	return n, m
}

// widthLine samples a Geometry's Width at the ends of a sub-range to
// recover the slope/intercept of its (already linear) width function,
// without requiring every Geometry implementation to expose one directly.
func widthLine(g geometry.Geometry, z0, z1 float64) (slope, intercept float64) {
	w0 := g.Width(z0)
	if z1 == z0 {
		return 0, w0
	}
	w1 := g.Width(z1)
	slope = (w1 - w0) / (z1 - z0)
	intercept = w0 - slope*z0
	return slope, intercept
}

// Resultants sums axial force and moment across every section of a
// Crosssection under a common strain distribution ε(z) = kappa*(z-zNeutral).
func (c Crosssection) Resultants(kappa, zNeutral float64) (n, m float64) {
	for _, s := range c {
		sn, sm := s.CurvatureResultants(kappa, zNeutral)
		n += sn
		m += sm
	}
	return n, m
}

// ConstantStrainResultants sums axial force and moment across every section
// of a Crosssection under a uniform strain epsilon0, used for the kappa=0
// MKappaByConstantCurvature branch and for the MomentAxialForce
// sub-cross-section problem.
func (c Crosssection) ConstantStrainResultants(epsilon0 float64) (n, m float64) {
	for _, s := range c {
		sn, sm := s.ConstantStrainResultants(epsilon0)
		n += sn
		m += sm
	}
	return n, m
}
