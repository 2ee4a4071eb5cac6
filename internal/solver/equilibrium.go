package solver

import (
	"math"

	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
)

// EquilibriumResult is the outcome of one M-kappa (or M-N) equilibrium
// solve: the neutral axis / reference strain that was found, and the
// resultant curvature, moment and axial force it produces.
type EquilibriumResult struct {
	ZNeutral   float64
	Kappa      float64
	Strain     float64 // the reference/uniform strain found, when applicable
	M          float64
	N          float64
	Status     Status
	Reason     FailureReason
	Iterations int
}

// initialZNeutral picks a starting neutral-axis guess away from z0, inside
// the cross-section's depth range, so that kappa(zn) never divides by zero
// on the first evaluation.
func initialZNeutral(cs section.Crosssection, z0 float64) float64 {
	mid := (cs.Top() + cs.Bottom()) / 2
	if mid == z0 {
		mid += (cs.Bottom()-cs.Top())*0.01 + 1e-6
	}
	return mid
}

// MKappaByStrainPosition finds the neutral axis z_n such that the
// cross-section's axial force under strain(z) = eps0/(z0-zn)*(z-zn) equals
// nApplied, for a fixed anchor (z0, eps0).
func MKappaByStrainPosition(cs section.Crosssection, z0, eps0, nApplied float64, cfg Config) EquilibriumResult {
	kappaOf := func(zn float64) float64 {
		if zn == z0 {
			return 0
		}
		return eps0 / (z0 - zn)
	}
	residual := func(zn float64) float64 {
		n, _ := cs.Resultants(kappaOf(zn), zn)
		return n - nApplied
	}
	res := Run(residual, initialZNeutral(cs, z0), cfg)
	kappa := kappaOf(res.X)
	_, m := cs.Resultants(kappa, res.X)
	return EquilibriumResult{
		ZNeutral: res.X, Kappa: kappa, M: m, N: res.Residual + nApplied,
		Status: res.Status, Reason: res.Reason, Iterations: res.Iterations,
	}
}

// MKappaByConstantCurvature finds the strain eps0 at reference depth zRef
// such that the cross-section's axial force under curvature kappa equals
// nApplied. kappa == 0 degenerates to a uniform-strain solve.
func MKappaByConstantCurvature(cs section.Crosssection, kappa, zRef, nApplied float64, cfg Config) EquilibriumResult {
	if kappa == 0 {
		residual := func(eps float64) float64 {
			n, _ := cs.ConstantStrainResultants(eps)
			return n - nApplied
		}
		res := Run(residual, 0, cfg)
		_, m := cs.ConstantStrainResultants(res.X)
		return EquilibriumResult{
			ZNeutral: math.NaN(), Kappa: 0, Strain: res.X, M: m, N: res.Residual + nApplied,
			Status: res.Status, Reason: res.Reason, Iterations: res.Iterations,
		}
	}

	residual := func(eps0 float64) float64 {
		zn := zRef - eps0/kappa
		n, _ := cs.Resultants(kappa, zn)
		return n - nApplied
	}
	res := Run(residual, 0, cfg)
	zn := zRef - res.X/kappa
	_, m := cs.Resultants(kappa, zn)
	return EquilibriumResult{
		ZNeutral: zn, Kappa: kappa, Strain: res.X, M: m, N: res.Residual + nApplied,
		Status: res.Status, Reason: res.Reason, Iterations: res.Iterations,
	}
}

// MomentAxialForce solves the composite sub-cross-section problem: a target
// axial force nApplied on sub-cross-section a, and -nApplied on
// sub-cross-section b, both at zero curvature. It returns the uniform
// strain found on each sub-cross-section and the sum of their moments.
func MomentAxialForce(a, b section.Crosssection, nApplied float64, cfg Config) (resultA, resultB EquilibriumResult, mTotal float64) {
	solve := func(cs section.Crosssection, target float64) EquilibriumResult {
		residual := func(eps float64) float64 {
			n, _ := cs.ConstantStrainResultants(eps)
			return n - target
		}
		res := Run(residual, 0, cfg)
		_, m := cs.ConstantStrainResultants(res.X)
		return EquilibriumResult{
			ZNeutral: math.NaN(), Kappa: 0, Strain: res.X, M: m, N: res.Residual + target,
			Status: res.Status, Reason: res.Reason, Iterations: res.Iterations,
		}
	}
	resultA = solve(a, nApplied)
	resultB = solve(b, -nApplied)
	return resultA, resultB, resultA.M + resultB.M
}
