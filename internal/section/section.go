// Package section pairs geometries with materials into Sections, groups
// Sections into a Crosssection, and integrates stress over a strain
// distribution to obtain axial force and moment.
package section

import (
	"fmt"

	"github.com/JohannesSchorr/M-N-Kappa/internal/geometry"
	"github.com/JohannesSchorr/M-N-Kappa/internal/material"
)

// Section pairs one Geometry with one Material.
type Section struct {
	Geometry geometry.Geometry
	Material material.Material
}

// New builds a Section. Geometry constructors already reject malformed
// shapes, so New only exists to document the pairing and leave room for
// section-level validation.
func New(g geometry.Geometry, m material.Material) Section {
	return Section{Geometry: g, Material: m}
}

// Crosssection is an unordered collection of Sections, none of which may
// overlap in (y, z); NewCrosssection enforces that.
type Crosssection []Section

// NewCrosssection composes sections into a Crosssection, rejecting any pair
// whose geometry overlaps in depth and horizontal extent.
func NewCrosssection(sections ...Section) (Crosssection, error) {
	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			if overlap(sections[i].Geometry, sections[j].Geometry) {
				return nil, fmt.Errorf("section: sections %d and %d overlap", i, j)
			}
		}
	}
	return Crosssection(sections), nil
}

func overlap(a, b geometry.Geometry) bool {
	top := max(a.Top(), b.Top())
	bottom := min(a.Bottom(), b.Bottom())
	if top >= bottom {
		return false // no depth overlap (or touching edges)
	}
	for _, z := range []float64{top, bottom} {
		aLeft, aRight := a.HorizontalRange(z)
		bLeft, bRight := b.HorizontalRange(z)
		if aLeft < bRight && bLeft < aRight {
			return true
		}
	}
	return false
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Top returns the shallowest depth among all sections.
func (c Crosssection) Top() float64 {
	top := c[0].Geometry.Top()
	for _, s := range c[1:] {
		if t := s.Geometry.Top(); t < top {
			top = t
		}
	}
	return top
}

// Bottom returns the deepest depth among all sections.
func (c Crosssection) Bottom() float64 {
	bottom := c[0].Geometry.Bottom()
	for _, s := range c[1:] {
		if b := s.Geometry.Bottom(); b > bottom {
			bottom = b
		}
	}
	return bottom
}

// ByRole returns the subset of sections tagged with role, used to split a
// composite Crosssection into its girder/slab sub-cross-sections.
func (c Crosssection) ByRole(role material.Role) Crosssection {
	var out Crosssection
	for _, s := range c {
		if s.Material.Role == role {
			out = append(out, s)
		}
	}
	return out
}
