package beam

import (
	"context"
	"fmt"

	"github.com/JohannesSchorr/M-N-Kappa/internal/loading"
	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
	"github.com/JohannesSchorr/M-N-Kappa/internal/solver"
)

// Beam discretises a single span into n+1 nodes and exposes deflection
// under an external loading, integrating each node's curvature against a
// unit virtual-load moment field (the Mueller-Breslau method, full
// interaction, no connector slip).
type Beam struct {
	SpanLength float64
	Nodes      []Node
	Loading    loading.Loading
}

// NewBeam builds a Beam with numElements equal elements (numElements+1
// nodes), computing each node's M-kappa curve from a cross-section
// template whose slab width is scaled to the effective bending width at
// that node's position.
func NewBeam(ctx context.Context, spanLength float64, numElements int, template section.Crosssection, ext loading.Loading, cfg solver.Config) (Beam, error) {
	if spanLength <= 0 {
		return Beam{}, fmt.Errorf("beam: span length must be positive, got %.6g", spanLength)
	}
	if numElements < 1 {
		return Beam{}, fmt.Errorf("beam: need at least one element, got %d", numElements)
	}
	nodes := make([]Node, numElements+1)
	for i := range nodes {
		x := spanLength * float64(i) / float64(numElements)
		nodes[i] = NewNode(ctx, x, spanLength, template, 0, cfg)
	}
	return Beam{SpanLength: spanLength, Nodes: nodes, Loading: ext}, nil
}

// curvatures returns the curvature distribution along the node grid under
// the beam's external loading.
func (b Beam) curvatures() []float64 {
	kappas := make([]float64, len(b.Nodes))
	for i, n := range b.Nodes {
		m := b.Loading.Moment(n.Position)
		kappas[i], _ = n.CurvatureAt(m)
	}
	return kappas
}

// virtualMoment is the bending moment at x produced by a unit virtual
// point load at xStar on a simply-supported span of length L (the
// Müller-Breslau unit-load field used by the virtual-force method).
func virtualMoment(x, xStar, spanLength float64) float64 {
	reactionLeft := (spanLength - xStar) / spanLength
	m := reactionLeft * x
	if x > xStar {
		m -= x - xStar
	}
	return m
}

// DeflectionAt returns the deflection at position xStar by integrating
// curvature(x) * virtualMoment(x, xStar) over the span via trapezoidal
// quadrature on the node grid.
func (b Beam) DeflectionAt(xStar float64) float64 {
	kappas := b.curvatures()
	var total float64
	for i := 1; i < len(b.Nodes); i++ {
		x0, x1 := b.Nodes[i-1].Position, b.Nodes[i].Position
		f0 := kappas[i-1] * virtualMoment(x0, xStar, b.SpanLength)
		f1 := kappas[i] * virtualMoment(x1, xStar, b.SpanLength)
		total += 0.5 * (f0 + f1) * (x1 - x0)
	}
	return total
}
