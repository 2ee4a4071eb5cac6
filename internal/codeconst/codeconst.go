// Package codeconst collects the closed-form, Eurocode-style material-curve
// formulas used to derive concrete and steel breakpoints from a handful of
// strength parameters.
package codeconst

import "math"

const (
	// SteelElasticModulus is the default modulus of elasticity for
	// structural steel (MPa) when a Steel configuration omits one.
	SteelElasticModulus = 210000.0
	// ReinforcementElasticModulus is the default modulus of elasticity
	// for reinforcing steel (MPa) when a Reinforcement configuration
	// omits one.
	ReinforcementElasticModulus = 200000.0
)

// ConcreteModulus returns the mean modulus of elasticity of concrete E_cm
// (MPa) from the mean compressive strength f_cm (MPa).
//
// E_cm = 22000 * (f_cm/10)^0.3
func ConcreteModulus(fcm float64) float64 {
	return 22000 * math.Pow(fcm/10, 0.3)
}

// MeanTensileStrength returns the mean tensile strength f_ctm (MPa) computed
// from the mean compressive strength f_cm (MPa) when no explicit f_ctm is
// supplied. With f_ck = f_cm - 8, it uses f_ctm = 0.3*f_ck^(2/3) for
// f_ck <= 50 N/mm^2 and f_ctm = 2.12*ln(1 + f_cm/10) above, the way EN
// 1992-1-1 splits normal- and high-strength concrete.
func MeanTensileStrength(fcm float64) float64 {
	fck := fcm - 8.0
	if fck <= 50 {
		return 0.3 * math.Pow(fck, 2.0/3.0)
	}
	return 2.12 * math.Log(1+0.1*fcm)
}

// NonlinearPeakStrain returns the strain at peak compressive stress
// epsilon_c1 (negative, dimensionless) for the Nonlinear concrete
// compression model.
//
// epsilon_c1 = -min(0.7*f_cm^0.31, 2.8) / 1000
func NonlinearPeakStrain(fcm float64) float64 {
	return -math.Min(0.7*math.Pow(fcm, 0.31), 2.8) / 1000
}

// NonlinearUltimateStrain returns the ultimate compressive strain
// epsilon_cu1 (negative, dimensionless).
//
// epsilon_cu1 = -min(2.8 + 27*((98-f_cm)/100)^4, 3.5) / 1000
func NonlinearUltimateStrain(fcm float64) float64 {
	x := (98 - fcm) / 100
	return -math.Min(2.8+27*x*x*x*x, 3.5) / 1000
}

// NonlinearK returns the curve-shape factor k used in the Nonlinear
// compression model: k = 1.05*E_cm*|epsilon_c1|/f_cm.
func NonlinearK(fcm, ecm, epsC1 float64) float64 {
	return 1.05 * ecm * math.Abs(epsC1) / fcm
}

// NonlinearStress evaluates sigma_c at strain (both given as negative
// compression-is-negative values) per the Nonlinear concrete model:
//
// sigma_c = f_cm * (k*eta - eta^2) / (1 + (k-2)*eta), eta = eps/eps_c1
func NonlinearStress(fcm, epsC1, k, strain float64) float64 {
	eta := strain / epsC1
	return fcm * (k*eta - eta*eta) / (1 + (k-2)*eta)
}

// ParabolaPeakStrain returns epsilon_c2 (negative) for the Parabola-
// Rectangle compression model, restricted to the f_ck <= 50 branch.
func ParabolaPeakStrain(float64) float64 { return -0.002 }

// ParabolaUltimateStrain returns epsilon_cu2 (negative) for the Parabola-
// Rectangle compression model, restricted to the f_ck <= 50 branch.
func ParabolaUltimateStrain(float64) float64 { return -0.0035 }

// ParabolaExponent returns the exponent n used in the Parabola-Rectangle
// compression model, restricted to the f_ck <= 50 branch.
func ParabolaExponent(float64) float64 { return 2.0 }

// BilinearPeakStrain returns epsilon_c3 (negative) for the Bilinear
// compression model, restricted to the f_ck <= 50 branch.
func BilinearPeakStrain(float64) float64 { return -0.00175 }

// BilinearUltimateStrain returns epsilon_cu3 (negative) for the Bilinear
// compression model, restricted to the f_ck <= 50 branch.
func BilinearUltimateStrain(float64) float64 { return -0.0035 }

// FractureEnergy returns the fracture energy G_F (N/mm) of concrete from
// its mean compressive strength f_cm (MPa).
//
// G_F = 73 * f_cm^0.18
func FractureEnergy(fcm float64) float64 {
	return 73 * math.Pow(fcm, 0.18)
}

// HeadedStudAlpha returns the reduction factor alpha applied to the concrete
// failure mode of a headed stud connector, per h_sc/d.
//
// alpha = 1 for h_sc/d >= 4, else 0.2*(h_sc/d + 1)
func HeadedStudAlpha(heightToDiameter float64) float64 {
	if heightToDiameter >= 4 {
		return 1.0
	}
	return 0.2 * (heightToDiameter + 1)
}

// HeadedStudResistance returns the design resistance P_R (N) of a headed
// stud shear connector with shank diameter d (mm), ultimate tensile
// strength fu (MPa), concrete cylinder strength fc (MPa) and concrete
// modulus Ecm (MPa).
//
// P_R = min(0.374*d^2*alpha*sqrt(fc*E_cm), fu*pi*d^2/4)
func HeadedStudResistance(d, alpha, fc, ecm, fu float64) float64 {
	steel := fu * math.Pi * d * d / 4
	concrete := 0.374 * d * d * alpha * math.Sqrt(fc*ecm)
	return math.Min(steel, concrete)
}
