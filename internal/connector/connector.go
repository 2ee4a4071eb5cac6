// Package connector models shear connectors joining the sub-cross-sections
// of a composite beam: a value type exposing a load(slip) curve and a
// position along the beam.
package connector

import (
	"fmt"
	"sort"

	"github.com/JohannesSchorr/M-N-Kappa/internal/codeconst"
)

// SlipPoint is one breakpoint of a load-slip curve.
type SlipPoint struct {
	Slip float64
	Load float64
}

// Connector is a shear connector at a fixed position along the beam,
// exposing its load-slip curve as a piecewise-linear function.
type Connector struct {
	Position float64
	Points   []SlipPoint // sorted ascending by Slip, Points[0].Slip == 0
}

// NewPiecewise builds a generic load-slip connector from explicit
// breakpoints, grounded on the minimal load(slip) interface every shear
// connector model exposes.
func NewPiecewise(position float64, points []SlipPoint) (Connector, error) {
	if len(points) < 2 {
		return Connector{}, fmt.Errorf("connector: need at least two load-slip points")
	}
	sorted := append([]SlipPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Slip < sorted[j].Slip })
	if sorted[0].Slip != 0 || sorted[0].Load != 0 {
		return Connector{}, fmt.Errorf("connector: load-slip curve must start at (0, 0)")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Slip == sorted[i-1].Slip {
			return Connector{}, fmt.Errorf("connector: duplicate slip value %.6g", sorted[i].Slip)
		}
	}
	return Connector{Position: position, Points: sorted}, nil
}

// NewHeadedStud builds a bilinear headed-stud connector: linear to the
// design resistance at slip = 0.5 mm, then a plateau to slip = 6 mm.
func NewHeadedStud(position, diameter, height, fu, fc, ecm float64) (Connector, error) {
	if diameter <= 0 {
		return Connector{}, fmt.Errorf("connector: diameter must be positive, got %.6g", diameter)
	}
	alpha := codeconst.HeadedStudAlpha(height / diameter)
	resistance := codeconst.HeadedStudResistance(diameter, alpha, fc, ecm, fu)
	return NewPiecewise(position, []SlipPoint{
		{Slip: 0, Load: 0},
		{Slip: 0.5, Load: resistance},
		{Slip: 6.0, Load: resistance},
	})
}

// Load returns the transmitted shear at the given slip, linearly
// interpolating between breakpoints and clamping to the end plateaus.
func (c Connector) Load(slip float64) float64 {
	if slip <= c.Points[0].Slip {
		return c.Points[0].Load
	}
	last := c.Points[len(c.Points)-1]
	if slip >= last.Slip {
		return last.Load
	}
	for i := 1; i < len(c.Points); i++ {
		if slip <= c.Points[i].Slip {
			a, b := c.Points[i-1], c.Points[i]
			frac := (slip - a.Slip) / (b.Slip - a.Slip)
			return a.Load + frac*(b.Load-a.Load)
		}
	}
	return last.Load
}

// Resistance returns the connector's ultimate design resistance, the load
// at its final breakpoint.
func (c Connector) Resistance() float64 {
	return c.Points[len(c.Points)-1].Load
}
