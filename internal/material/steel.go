package material

import (
	"fmt"

	"github.com/JohannesSchorr/M-N-Kappa/internal/codeconst"
)

// SteelConfig configures a structural-steel Material.
//
// Omitting FailureStrain selects an elastic-perfectly-plastic idealisation
// with no ultimate cutoff (the yield plateau extends to an effectively
// unbounded strain); providing both Fu and FailureStrain adds a linear
// hardening branch from yield to (FailureStrain, Fu), beyond which the
// material fails. See DESIGN.md for the reasoning behind this default.
type SteelConfig struct {
	Fy             float64 // yield strength, required
	Fu             float64 // optional ultimate strength
	FailureStrain  float64 // optional ultimate strain
	ElasticModulus float64 // 0 => codeconst.SteelElasticModulus
	Role           Role
}

// NewSteel builds a structural-steel Material from cfg.
func NewSteel(cfg SteelConfig) (Material, error) {
	return newMetal(cfg.Fy, cfg.Fu, cfg.FailureStrain, cfg.ElasticModulus, codeconst.SteelElasticModulus, cfg.Role)
}

// ReinforcementConfig configures a reinforcement-bar Material; semantics
// mirror SteelConfig with a different default elastic modulus.
type ReinforcementConfig struct {
	Fy             float64
	Fu             float64
	FailureStrain  float64
	ElasticModulus float64 // 0 => codeconst.ReinforcementElasticModulus
	Role           Role
}

// NewReinforcement builds a reinforcement Material from cfg.
func NewReinforcement(cfg ReinforcementConfig) (Material, error) {
	return newMetal(cfg.Fy, cfg.Fu, cfg.FailureStrain, cfg.ElasticModulus, codeconst.ReinforcementElasticModulus, cfg.Role)
}

// newMetal builds the symmetric (odd-function) bilinear-or-trilinear curve
// shared by structural steel and reinforcement: elastic to +-Fy, optional
// hardening to +-(FailureStrain, Fu).
func newMetal(fy, fu, failureStrain, elasticModulus, defaultModulus float64, role Role) (Material, error) {
	if fy <= 0 {
		return Material{}, fmt.Errorf("material: Fy must be positive, got %.6g", fy)
	}
	e := elasticModulus
	if e <= 0 {
		e = defaultModulus
	}
	epsY := fy / e

	var points []StrainStress
	var limit float64
	if fu > 0 && failureStrain > 0 {
		if failureStrain <= epsY {
			return Material{}, fmt.Errorf("material: FailureStrain must exceed the yield strain Fy/E")
		}
		points = []StrainStress{
			{Strain: -failureStrain, Stress: -fu},
			{Strain: -epsY, Stress: -fy},
			{Strain: 0, Stress: 0},
			{Strain: epsY, Stress: fy},
			{Strain: failureStrain, Stress: fu},
		}
		limit = failureStrain
	} else {
		points = []StrainStress{
			{Strain: -unboundedStrain, Stress: -fy},
			{Strain: -epsY, Stress: -fy},
			{Strain: 0, Stress: 0},
			{Strain: epsY, Stress: fy},
			{Strain: unboundedStrain, Stress: fy},
		}
		limit = unboundedStrain
	}

	return New(points, role, -limit, limit)
}
