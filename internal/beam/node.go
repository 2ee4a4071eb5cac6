package beam

import (
	"context"

	"github.com/JohannesSchorr/M-N-Kappa/internal/curves"
	"github.com/JohannesSchorr/M-N-Kappa/internal/geometry"
	"github.com/JohannesSchorr/M-N-Kappa/internal/material"
	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
	"github.com/JohannesSchorr/M-N-Kappa/internal/solver"
)

// Node is one discretisation point along a beam, carrying its own
// effective-width-scaled cross-section and M-kappa curve.
type Node struct {
	Position     float64
	BendingWidth float64
	MembraneWidth float64

	Bending       section.Crosssection
	MKappaCurve   []curves.Point
	FailedAnchors []curves.FailedAnchor
}

// scaleWidth rebuilds a Rectangle/Trapezoid section at a new total width,
// keeping its left edge fixed; Circle (rebar point masses) and any other
// primitive pass through unscaled.
func scaleWidth(s section.Section, fullWidth, newWidth float64) section.Section {
	if fullWidth <= 0 {
		return s
	}
	factor := newWidth / fullWidth
	switch g := s.Geometry.(type) {
	case geometry.Rectangle:
		width := (g.Right - g.Left) * factor
		ng, err := geometry.NewRectangle(g.TopEdge, g.BottomEdge, g.Left, g.Left+width)
		if err != nil {
			return s
		}
		return section.New(ng, s.Material)
	case geometry.Trapezoid:
		ng, err := geometry.NewTrapezoid(g.TopEdge, g.BottomEdge, g.TopWidth*factor, g.BottomWidth*factor, g.TopLeftOffset, g.BottomLeftOffset)
		if err != nil {
			return s
		}
		return section.New(ng, s.Material)
	default:
		return s
	}
}

// scaleCrosssection scales every slab-role section in cs from its full
// geometric width to width, leaving girder/reinforcement sections
// untouched.
func scaleCrosssection(cs section.Crosssection, fullWidth, width float64) section.Crosssection {
	out := make(section.Crosssection, len(cs))
	for i, s := range cs {
		if s.Material.Role == material.RoleSlab {
			out[i] = scaleWidth(s, fullWidth, width)
			continue
		}
		out[i] = s
	}
	return out
}

// slabWidth returns the full geometric width of the slab-role sections in
// cs (the sum of their Rectangle/Trapezoid widths at their top edge),
// used as the reference width EffectiveWidthBending/Membrane scale down
// from.
func slabWidth(cs section.Crosssection) float64 {
	var total float64
	for _, s := range cs {
		if s.Material.Role != material.RoleSlab {
			continue
		}
		total += s.Geometry.Width(s.Geometry.Top())
	}
	return total
}

// NewNode builds one beam node at position x: it scales the template
// cross-section's slab width to the bending effective width at x and
// computes that node's M-kappa curve.
func NewNode(ctx context.Context, x, spanLength float64, template section.Crosssection, nApplied float64, cfg solver.Config) Node {
	fullWidth := slabWidth(template)
	bendingWidth := EffectiveWidthBending(x, spanLength, fullWidth)
	membraneWidth := EffectiveWidthMembrane(x, spanLength, fullWidth)

	bendingCrosssection := scaleCrosssection(template, fullWidth, bendingWidth)
	points, failed := curves.GenerateMKappa(ctx, bendingCrosssection, nApplied, true, true, cfg)

	return Node{
		Position:      x,
		BendingWidth:  bendingWidth,
		MembraneWidth: membraneWidth,
		Bending:       bendingCrosssection,
		MKappaCurve:   points,
		FailedAnchors: failed,
	}
}

// CurvatureAt returns the curvature on the node's M-kappa curve whose
// moment is closest to m, by linear interpolation between the bracketing
// points. ok is false when the curve has fewer than two points.
func (n Node) CurvatureAt(m float64) (kappa float64, ok bool) {
	pts := n.MKappaCurve
	if len(pts) < 2 {
		return 0, false
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if (m >= a.M && m <= b.M) || (m <= a.M && m >= b.M) {
			if b.M == a.M {
				return a.Kappa, true
			}
			frac := (m - a.M) / (b.M - a.M)
			return a.Kappa + frac*(b.Kappa-a.Kappa), true
		}
	}
	if m < pts[0].M {
		return pts[0].Kappa, true
	}
	return pts[len(pts)-1].Kappa, true
}
