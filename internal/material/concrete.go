package material

import (
	"fmt"
	"math"

	"github.com/JohannesSchorr/M-N-Kappa/internal/codeconst"
)

// CompressionModel selects the concrete compression stress-strain family.
type CompressionModel int

const (
	// Nonlinear is the continuous EN 1992-1-1 Formula 3.14 curve, sampled
	// piecewise-linearly per a chord-error tolerance (see NewConcrete).
	Nonlinear CompressionModel = iota
	// Parabola is the parabola-rectangle compression model.
	Parabola
	// Bilinear is the bilinear compression model.
	Bilinear
)

// TensionModel selects the concrete tension stress-strain family.
type TensionModel int

const (
	// TensionDefault rises linearly to f_ctm then drops to zero stress.
	TensionDefault TensionModel = iota
	// TensionConsiderOpeningBehaviour softens post-peak per fracture
	// energy crack-opening.
	TensionConsiderOpeningBehaviour
)

// noTensionStrain is the sentinel strain used when UseTension is false: the
// section is modelled as carrying essentially zero tensile strain capacity.
const noTensionStrain = 1e-10

// unboundedStrain stands in for "no further limit" when a config leaves a
// failure strain unset; chosen far beyond any physically meaningful strain
// so boundary analysis never binds on it ahead of a real material limit.
const unboundedStrain = 1.0

// ConcreteConfig configures a concrete Material.
type ConcreteConfig struct {
	Fcm                        float64 // mean compressive strength, required
	Fctm                       float64 // mean tensile strength; 0 => auto-computed from Fcm
	CompressionStressStrainType CompressionModel
	UseTension                 bool
	TensionStressStrainType    TensionModel
	Role                       Role
}

// NewConcrete builds a concrete Material from cfg, generating compression
// and tension breakpoints per the closed-form curve selected by
// cfg.CompressionStressStrainType/TensionStressStrainType.
func NewConcrete(cfg ConcreteConfig) (Material, error) {
	if cfg.Fcm <= 0 {
		return Material{}, fmt.Errorf("material: concrete Fcm must be positive, got %.6g", cfg.Fcm)
	}
	fctm := cfg.Fctm
	if fctm <= 0 {
		fctm = codeconst.MeanTensileStrength(cfg.Fcm)
	}
	ecm := codeconst.ConcreteModulus(cfg.Fcm)

	compression, minStrain, err := concreteCompressionPoints(cfg.CompressionStressStrainType, cfg.Fcm, ecm)
	if err != nil {
		return Material{}, err
	}
	tension, maxStrain := concreteTensionPoints(cfg, fctm, ecm)

	points := make([]StrainStress, 0, len(compression)+len(tension)+1)
	points = append(points, compression...)
	points = append(points, StrainStress{Strain: 0, Stress: 0})
	points = append(points, tension...)

	return New(points, cfg.Role, minStrain, maxStrain)
}

// concreteCompressionPoints returns the compression-side breakpoints
// (strain <= 0, ascending) and the compression failure strain.
func concreteCompressionPoints(model CompressionModel, fcm, ecm float64) ([]StrainStress, float64, error) {
	switch model {
	case Nonlinear:
		return nonlinearCompressionPoints(fcm, ecm), codeconst.NonlinearUltimateStrain(fcm), nil
	case Parabola:
		return parabolaCompressionPoints(fcm), codeconst.ParabolaUltimateStrain(fcm), nil
	case Bilinear:
		return bilinearCompressionPoints(fcm), codeconst.BilinearUltimateStrain(fcm), nil
	default:
		return nil, 0, fmt.Errorf("material: unknown compression model %d", model)
	}
}

// nonlinearCompressionPoints samples EN 1992-1-1 Formula 3.14 piecewise-
// linearly. Sampling refines by bisecting the interval with the largest
// midpoint chord-to-curve error until every such error is below tolerance
// (1% of Fcm).
// Refinement is capped to bound the breakpoint count for pathological
// inputs.
func nonlinearCompressionPoints(fcm, ecm float64) []StrainStress {
	epsC1 := codeconst.NonlinearPeakStrain(fcm)
	epsCu1 := codeconst.NonlinearUltimateStrain(fcm)
	k := codeconst.NonlinearK(fcm, ecm, epsC1)
	stress := func(eps float64) float64 {
		if eps == 0 {
			return 0
		}
		return -codeconst.NonlinearStress(fcm, epsC1, k, eps)
	}

	tol := 0.01 * fcm
	const maxPoints = 64

	strains := []float64{epsCu1, epsC1, 0}
	for len(strains) < maxPoints {
		worstIdx, worstErr := -1, tol
		for i := 1; i < len(strains); i++ {
			a, b := strains[i-1], strains[i]
			mid := 0.5 * (a + b)
			chord := 0.5 * (stress(a) + stress(b))
			if e := math.Abs(stress(mid) - chord); e > worstErr {
				worstErr, worstIdx = e, i
			}
		}
		if worstIdx < 0 {
			break
		}
		mid := 0.5 * (strains[worstIdx-1] + strains[worstIdx])
		strains = append(strains, 0)
		copy(strains[worstIdx+1:], strains[worstIdx:])
		strains[worstIdx] = mid
	}

	points := make([]StrainStress, 0, len(strains))
	for _, eps := range strains {
		if eps == 0 {
			continue
		}
		points = append(points, StrainStress{Strain: eps, Stress: stress(eps)})
	}
	return points
}

func parabolaCompressionPoints(fcm float64) []StrainStress {
	epsC2 := codeconst.ParabolaPeakStrain(fcm)
	epsCu2 := codeconst.ParabolaUltimateStrain(fcm)
	n := codeconst.ParabolaExponent(fcm)
	stressAt := func(eps float64) float64 {
		return -fcm * (1 - math.Pow(1-eps/epsC2, n))
	}
	return []StrainStress{
		{Strain: 0.25 * epsC2, Stress: stressAt(0.25 * epsC2)},
		{Strain: 0.5 * epsC2, Stress: stressAt(0.5 * epsC2)},
		{Strain: 0.75 * epsC2, Stress: stressAt(0.75 * epsC2)},
		{Strain: epsC2, Stress: -fcm},
		{Strain: epsCu2, Stress: -fcm},
	}
}

func bilinearCompressionPoints(fcm float64) []StrainStress {
	epsC3 := codeconst.BilinearPeakStrain(fcm)
	epsCu3 := codeconst.BilinearUltimateStrain(fcm)
	return []StrainStress{
		{Strain: epsC3, Stress: -fcm},
		{Strain: epsCu3, Stress: -fcm},
	}
}

// concreteTensionPoints returns the tension-side breakpoints (strain >= 0,
// ascending) and the tension failure strain.
func concreteTensionPoints(cfg ConcreteConfig, fctm, ecm float64) ([]StrainStress, float64) {
	if !cfg.UseTension {
		return []StrainStress{{Strain: noTensionStrain, Stress: 0}}, noTensionStrain
	}
	epsCtm := fctm / ecm
	switch cfg.TensionStressStrainType {
	case TensionConsiderOpeningBehaviour:
		gf := codeconst.FractureEnergy(cfg.Fcm)
		w1 := gf / fctm
		wc := 5 * gf / fctm
		return []StrainStress{
			{Strain: epsCtm, Stress: fctm},
			{Strain: w1, Stress: 0.2 * fctm},
			{Strain: wc, Stress: 0},
			{Strain: unboundedStrain, Stress: 0},
		}, unboundedStrain
	default:
		drop := epsCtm * (1 + 1e-6)
		return []StrainStress{
			{Strain: epsCtm, Stress: fctm},
			{Strain: drop, Stress: 0},
			{Strain: unboundedStrain, Stress: 0},
		}, unboundedStrain
	}
}
