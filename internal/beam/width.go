// Package beam discretises a single span into nodes, each carrying an
// effective-width-scaled cross-section and its own M-kappa curve (or
// M-N-kappa-epsilonDelta surface for composite beams), and solves for
// deflection with and without shear-connector slip.
package beam

// EffectiveWidthBending returns the effective width for bending action at
// position x along a span of the given length, for a slab of full
// geometric width fullWidth, following the Eurocode-style linear taper
// from the support (full width reached at spanLength/8).
func EffectiveWidthBending(x, spanLength, fullWidth float64) float64 {
	return effectiveWidth(x, spanLength, fullWidth, 8)
}

// EffectiveWidthMembrane returns the effective width for membrane
// (axial/slip) action at position x. Membrane shear lag is more
// pronounced than bending shear lag, so it reaches full width over a
// longer distance from the support and stays narrower than the bending
// width near the ends of the span.
func EffectiveWidthMembrane(x, spanLength, fullWidth float64) float64 {
	return effectiveWidth(x, spanLength, fullWidth, 4)
}

// effectiveWidth tapers linearly from zero at the support to fullWidth at
// a distance spanLength/divisor from the nearer support, then holds at
// fullWidth across the interior.
func effectiveWidth(x, spanLength, fullWidth, divisor float64) float64 {
	distanceToSupport := x
	if d := spanLength - x; d < distanceToSupport {
		distanceToSupport = d
	}
	taperLength := spanLength / divisor
	if taperLength <= 0 {
		return fullWidth
	}
	frac := distanceToSupport / taperLength
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}
	return fullWidth * frac
}
