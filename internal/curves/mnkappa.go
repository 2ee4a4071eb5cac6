package curves

import (
	"context"
	"sort"

	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
	"github.com/JohannesSchorr/M-N-Kappa/internal/solver"
)

// MNKappaPoint is one entry of the M-N-kappa-epsilonDelta surface: a
// converged (moment, axial force, curvature) triple at a fixed strain
// difference between the two sub-cross-sections of a composite section.
type MNKappaPoint struct {
	M        float64
	N        float64
	Kappa    float64
	EpsDelta float64
}

// GenerateMNKappa fills the interior between the M-N and M-kappa edges of a
// composite cross-section split into sub-cross-sections a and b: for each
// axial-force level produced by GenerateMN, the M-kappa procedure is
// repeated on each sub-cross-section under that (signed) axial force.
func GenerateMNKappa(ctx context.Context, a, b section.Crosssection, cfg solver.Config) ([]MNKappaPoint, []FailedAnchor) {
	mnPoints, failed := GenerateMN(a, b, cfg)

	var out []MNKappaPoint
	for _, mn := range mnPoints {
		ptsA, failedA := GenerateMKappa(ctx, a, mn.N, true, true, cfg)
		failed = append(failed, failedA...)
		for _, p := range ptsA {
			out = append(out, MNKappaPoint{M: p.M, N: p.N, Kappa: p.Kappa, EpsDelta: mn.EpsDelta})
		}

		ptsB, failedB := GenerateMKappa(ctx, b, -mn.N, true, true, cfg)
		failed = append(failed, failedB...)
		for _, p := range ptsB {
			out = append(out, MNKappaPoint{M: p.M, N: p.N, Kappa: p.Kappa, EpsDelta: mn.EpsDelta})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kappa != out[j].Kappa {
			return out[i].Kappa < out[j].Kappa
		}
		return out[i].N < out[j].N
	})
	return out, failed
}
