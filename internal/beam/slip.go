package beam

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/JohannesSchorr/M-N-Kappa/internal/connector"
	"github.com/JohannesSchorr/M-N-Kappa/internal/curves"
	"github.com/JohannesSchorr/M-N-Kappa/internal/loading"
)

// CompositeNode is one node of a composite beam: its position, the M-N-
// kappa-epsilonDelta surface covering its girder/slab split, and the
// connector transmitting shear at that position.
type CompositeNode struct {
	Position  float64
	Surface   []curves.MNKappaPoint
	Connector connector.Connector
}

// CompositeBeam is a beam with shear connectors between its girder and
// slab sub-cross-sections, solved for slip by damped Gauss-Newton
// iteration.
type CompositeBeam struct {
	SpanLength     float64
	Nodes          []CompositeNode
	ExternalLoading loading.Loading
	// ZeroSlipPosition is x_{s=0}, the position at which slip (and hence
	// strain difference) is taken to vanish by symmetry of the loading.
	ZeroSlipPosition float64
}

// SlipConfig bounds and parameterises the Levenberg-Marquardt slip solve.
type SlipConfig struct {
	Tolerance     float64
	MaxIterations int
	Lambda        float64
	LambdaUp      float64
	LambdaDown    float64
	LambdaMin     float64
	LambdaMax     float64
	Alpha         float64
	AlphaFloor    float64
	FDStep        float64
}

func (c SlipConfig) withDefaults() SlipConfig {
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-3
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 100
	}
	if c.Lambda <= 0 {
		c.Lambda = 1e-3
	}
	if c.LambdaUp <= 0 {
		c.LambdaUp = 10
	}
	if c.LambdaDown <= 0 {
		c.LambdaDown = 10
	}
	if c.LambdaMin <= 0 {
		c.LambdaMin = 1e-12
	}
	if c.LambdaMax <= 0 {
		c.LambdaMax = 1e6
	}
	if c.Alpha <= 0 {
		c.Alpha = 1
	}
	if c.AlphaFloor <= 0 {
		c.AlphaFloor = 1e-3
	}
	if c.FDStep <= 0 {
		c.FDStep = 1e-6
	}
	return c
}

// SlipFailureReason classifies why a slip solve failed to converge.
type SlipFailureReason int

const (
	SlipNoFailure SlipFailureReason = iota
	SlipMaxIterations
	SlipSingularJacobian
)

// SlipResult is the outcome of one Levenberg-Marquardt slip solve.
type SlipResult struct {
	Slip       []float64
	Residual   []float64
	ResidualInf float64
	Converged  bool
	Reason     SlipFailureReason
	Iterations int
}

func (b CompositeBeam) zeroCrossingIndex() int {
	best, bestDist := 0, math.Inf(1)
	for i, n := range b.Nodes {
		if d := math.Abs(n.Position - b.ZeroSlipPosition); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// cumulativeForce sums transmitted connector shear from the slip-zero
// crossing out to node i.
func (b CompositeBeam) cumulativeForce(s []float64, i int) float64 {
	zero := b.zeroCrossingIndex()
	var total float64
	if i >= zero {
		for j := zero; j <= i; j++ {
			total += b.Nodes[j].Connector.Load(s[j])
		}
	} else {
		for j := i; j < zero; j++ {
			total -= b.Nodes[j].Connector.Load(s[j])
		}
	}
	return total
}

// lookupSurface interpolates the resisting moment on (N, epsDelta) by
// inverse-distance weighting: the M-N-kappa points a curve generator
// produces from anchor breakpoints are not guaranteed to fall on a
// rectangular grid, so a structured bilinear lookup cannot always be
// built. The lookup returns a surface point's moment exactly when the
// query coincides with it; between points it returns the 1/d^2-weighted
// mean, which in general differs from linear or bilinear interpolation.
func lookupSurface(points []curves.MNKappaPoint, n, epsDelta float64) float64 {
	if len(points) == 0 {
		return 0
	}
	nScale, epsScale := 1.0, 1e-3
	for _, p := range points {
		if a := math.Abs(p.N); a > nScale {
			nScale = a
		}
		if a := math.Abs(p.EpsDelta); a > epsScale {
			epsScale = a
		}
	}
	var weightedSum, weightSum float64
	for _, p := range points {
		dn := (n - p.N) / nScale
		de := (epsDelta - p.EpsDelta) / epsScale
		dist := math.Hypot(dn, de)
		if dist < 1e-9 {
			return p.M
		}
		w := 1 / (dist * dist)
		weightedSum += w * p.M
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}

// residual evaluates f(s) = M_R - M_E at every node.
func (b CompositeBeam) residual(s []float64) []float64 {
	f := make([]float64, len(b.Nodes))
	for i, node := range b.Nodes {
		epsDelta := 0.0
		if node.Position != b.ZeroSlipPosition {
			epsDelta = s[i] / (node.Position - b.ZeroSlipPosition)
		}
		nAxial := b.cumulativeForce(s, i)
		mR := lookupSurface(node.Surface, nAxial, epsDelta)
		mE := b.ExternalLoading.Moment(node.Position)
		f[i] = mR - mE
	}
	return f
}

// SolveSlip finds the slip distribution that balances resisting and
// external moment at every node, via damped Gauss-Newton (Levenberg-
// Marquardt) with a forward-finite-difference Jacobian and a QR-solved
// inner linear system.
func SolveSlip(b CompositeBeam, initial []float64, cfg SlipConfig) SlipResult {
	cfg = cfg.withDefaults()
	n := len(b.Nodes)

	s := make([]float64, n)
	if initial != nil {
		copy(s, initial)
	}

	lambda, alpha := cfg.Lambda, cfg.Alpha
	f := b.residual(s)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		normInf := infNorm(f)
		if normInf == 0 {
			// f = 0 gives J^T f = 0, so the damped step is zero whatever the
			// Jacobian: both convergence conditions already hold.
			return SlipResult{Slip: s, Residual: f, ResidualInf: normInf, Converged: true, Iterations: iter}
		}

		jac := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			step := cfg.FDStep * (1 + math.Abs(s[j]))
			sPerturbed := append([]float64(nil), s...)
			sPerturbed[j] += step
			fPerturbed := b.residual(sPerturbed)
			for i := 0; i < n; i++ {
				jac.Set(i, j, (fPerturbed[i]-f[i])/step)
			}
		}

		var jt mat.Dense
		jt.CloneFrom(jac.T())
		var jtj mat.Dense
		jtj.Mul(&jt, jac)

		fVec := mat.NewVecDense(n, f)
		var jtf mat.VecDense
		jtf.MulVec(&jt, fVec)

		a := mat.NewDense(n, n, nil)
		a.Copy(&jtj)
		for i := 0; i < n; i++ {
			a.Set(i, i, a.At(i, i)+lambda*jtj.At(i, i))
		}

		var qr mat.QR
		qr.Factorize(a)
		var newtonStep mat.VecDense
		if err := qr.SolveVecTo(&newtonStep, false, &jtf); err != nil {
			return SlipResult{Slip: s, Residual: f, ResidualInf: normInf, Converged: false, Reason: SlipSingularJacobian, Iterations: iter}
		}

		stepVec := make([]float64, n)
		for i := range stepVec {
			stepVec[i] = alpha * newtonStep.AtVec(i)
		}
		stepNorm := infNorm(stepVec)
		if normInf < cfg.Tolerance && stepNorm < cfg.Tolerance {
			return SlipResult{Slip: s, Residual: f, ResidualInf: normInf, Converged: true, Iterations: iter}
		}

		candidate := make([]float64, n)
		for i := range candidate {
			candidate[i] = s[i] - stepVec[i]
		}
		fCandidate := b.residual(candidate)
		if infNorm(fCandidate) < normInf {
			s, f = candidate, fCandidate
			lambda /= cfg.LambdaDown
			if lambda < cfg.LambdaMin {
				lambda = cfg.LambdaMin
			}
			alpha = cfg.Alpha
		} else {
			lambda *= cfg.LambdaUp
			if lambda > cfg.LambdaMax {
				lambda = cfg.LambdaMax
			}
			alpha /= 2
			if alpha < cfg.AlphaFloor {
				alpha = cfg.AlphaFloor
			}
		}
	}

	return SlipResult{Slip: s, Residual: f, ResidualInf: infNorm(f), Converged: false, Reason: SlipMaxIterations, Iterations: cfg.MaxIterations}
}

func infNorm(v []float64) float64 {
	var max float64
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	return max
}
