// Package curves generates M-kappa, M-N and M-N-kappa-epsilonDelta curves
// by launching one equilibrium solve per anchor and collecting the results.
// Anchor solves are embarrassingly parallel; GenerateMKappa fans them out
// over a bounded worker pool.
package curves

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/JohannesSchorr/M-N-Kappa/internal/boundary"
	"github.com/JohannesSchorr/M-N-Kappa/internal/section"
	"github.com/JohannesSchorr/M-N-Kappa/internal/solver"
)

// Point is one converged entry of an M-kappa curve.
type Point struct {
	Kappa    float64
	M        float64
	N        float64
	ZNeutral float64
}

// FailedAnchor records an anchor whose solve did not converge, so the
// curve generator can report it without aborting the rest of the curve.
type FailedAnchor struct {
	Z      float64
	Strain float64
	Reason solver.FailureReason
}

// anchorBreakpoints enumerates every (z, strain) pair where a section edge
// meets one of its material's stress-strain breakpoints.
func anchorBreakpoints(cs section.Crosssection) []boundary.Anchor {
	var out []boundary.Anchor
	seen := make(map[boundary.Anchor]bool)
	for _, s := range cs {
		for _, z := range [2]float64{s.Geometry.Top(), s.Geometry.Bottom()} {
			for _, p := range s.Material.Points {
				if p.Strain < s.Material.MinStrain || p.Strain > s.Material.MaxStrain {
					continue
				}
				a := boundary.Anchor{Z: z, Strain: p.Strain}
				if !seen[a] {
					seen[a] = true
					out = append(out, a)
				}
			}
		}
	}
	return out
}

// GenerateMKappa computes the M-kappa curve of cs under axial force
// nApplied, enabling the positive and/or negative curvature branch as
// requested. Anchors are solved concurrently over a bounded worker pool
// and the resulting points are sorted and deduplicated by kappa.
func GenerateMKappa(ctx context.Context, cs section.Crosssection, nApplied float64, positive, negative bool, cfg solver.Config) ([]Point, []FailedAnchor) {
	zRef := (cs.Top() + cs.Bottom()) / 2
	posFail, negFail, havePos, haveNeg := boundary.MaximumCurvature(cs, boundary.Anchor{Z: zRef, Strain: 0})

	anchors := anchorBreakpoints(cs)

	type outcome struct {
		point  Point
		failed *FailedAnchor
		ok     bool
	}
	results := make([]outcome, len(anchors))

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(anchors) {
		workers = len(anchors)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					continue // keep draining jobs so the sender never blocks
				default:
				}
				a := anchors[i]
				res := solver.MKappaByStrainPosition(cs, a.Z, a.Strain, nApplied, cfg)
				if res.Status != solver.Converged {
					results[i] = outcome{failed: &FailedAnchor{Z: a.Z, Strain: a.Strain, Reason: res.Reason}, ok: true}
					continue
				}
				if !withinFailureCurvature(res.Kappa, posFail, negFail, havePos, haveNeg, positive, negative) {
					continue
				}
				results[i] = outcome{point: Point{Kappa: res.Kappa, M: res.M, N: res.N, ZNeutral: res.ZNeutral}, ok: true}
			}
		}()
	}
	for i := range anchors {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var points []Point
	var failed []FailedAnchor
	seen := make(map[float64]bool)
	for _, r := range results {
		if !r.ok {
			continue
		}
		if r.failed != nil {
			failed = append(failed, *r.failed)
			continue
		}
		if seen[r.point.Kappa] {
			continue
		}
		seen[r.point.Kappa] = true
		points = append(points, r.point)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Kappa != points[j].Kappa {
			return points[i].Kappa < points[j].Kappa
		}
		return points[i].N < points[j].N
	})
	return points, failed
}

// withinFailureCurvature reports whether kappa lies on an enabled branch
// within the admissible range seeded by boundary.MaximumCurvature.
func withinFailureCurvature(kappa float64, posFail, negFail boundary.Candidate, havePos, haveNeg, positive, negative bool) bool {
	switch {
	case kappa > 0:
		return positive && havePos && kappa <= posFail.Kappa
	case kappa < 0:
		return negative && haveNeg && kappa >= negFail.Kappa
	default:
		return positive || negative
	}
}

// MNPoint is one entry of an M-N curve: a balanced axial-force level with
// the moment and strain-difference it produces.
type MNPoint struct {
	M         float64
	N         float64
	EpsDelta  float64
	ReverseAB bool // true when B drove the breakpoint and A balanced it
}

// GenerateMN computes the M-N curve of a composite cross-section split
// into sub-cross-sections a and b: for each material breakpoint on a,
// the constant-strain force it produces is applied (negated) to b, and
// the balancing strain on b is solved; the roles are then reversed.
func GenerateMN(a, b section.Crosssection, cfg solver.Config) ([]MNPoint, []FailedAnchor) {
	var points []MNPoint
	var failed []FailedAnchor

	onePass := func(drive, balance section.Crosssection, reverse bool) {
		for _, s := range drive {
			for _, p := range s.Material.Points {
				if p.Strain < s.Material.MinStrain || p.Strain > s.Material.MaxStrain {
					continue
				}
				n, _ := drive.ConstantStrainResultants(p.Strain)
				resDrive, resBalance, mTotal := solver.MomentAxialForce(drive, balance, n, cfg)
				if resDrive.Status != solver.Converged || resBalance.Status != solver.Converged {
					reason := resDrive.Reason
					if resDrive.Status == solver.Converged {
						reason = resBalance.Reason
					}
					failed = append(failed, FailedAnchor{Z: s.Geometry.Top(), Strain: p.Strain, Reason: reason})
					continue
				}
				points = append(points, MNPoint{
					M: mTotal, N: n, EpsDelta: resDrive.Strain - resBalance.Strain, ReverseAB: reverse,
				})
			}
		}
	}

	onePass(a, b, false)
	onePass(b, a, true)

	sort.Slice(points, func(i, j int) bool {
		if points[i].N != points[j].N {
			return points[i].N < points[j].N
		}
		return points[i].M < points[j].M
	})
	return points, failed
}
