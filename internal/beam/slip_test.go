package beam

import (
	"testing"

	"github.com/JohannesSchorr/M-N-Kappa/internal/connector"
	"github.com/JohannesSchorr/M-N-Kappa/internal/curves"
	"github.com/JohannesSchorr/M-N-Kappa/internal/loading"
)

func TestSolveSlipConvergesWhenResidualIsAlreadyZero(t *testing.T) {
	conn, err := connector.NewPiecewise(0, []connector.SlipPoint{{Slip: 0, Load: 0}, {Slip: 1, Load: 100}})
	if err != nil {
		t.Fatalf("NewPiecewise: %v", err)
	}
	zeroLoad, err := loading.NewSingleSpanUniformLoad(8000, 0)
	if err != nil {
		t.Fatalf("NewSingleSpanUniformLoad: %v", err)
	}

	nodes := make([]CompositeNode, 5)
	for i := range nodes {
		nodes[i] = CompositeNode{
			Position:  8000 * float64(i) / 4,
			Surface:   []curves.MNKappaPoint{{M: 0, N: 0, Kappa: 0, EpsDelta: 0}},
			Connector: conn,
		}
	}
	b := CompositeBeam{SpanLength: 8000, Nodes: nodes, ExternalLoading: zeroLoad, ZeroSlipPosition: 4000}

	res := SolveSlip(b, nil, SlipConfig{Tolerance: 1e-6, MaxIterations: 20})
	if !res.Converged {
		t.Fatalf("expected convergence, got reason %v residual %v", res.Reason, res.ResidualInf)
	}
	if res.Iterations != 0 {
		t.Errorf("expected immediate convergence at iteration 0, got %d", res.Iterations)
	}
}

func TestSolveSlipReportsMaxIterationsOnUnreachableTolerance(t *testing.T) {
	conn, err := connector.NewPiecewise(0, []connector.SlipPoint{{Slip: 0, Load: 0}, {Slip: 1, Load: 100}})
	if err != nil {
		t.Fatalf("NewPiecewise: %v", err)
	}
	load, err := loading.NewSingleSpanUniformLoad(8000, 10)
	if err != nil {
		t.Fatalf("NewSingleSpanUniformLoad: %v", err)
	}
	nodes := make([]CompositeNode, 3)
	for i := range nodes {
		nodes[i] = CompositeNode{
			Position: 8000 * float64(i) / 2,
			Surface: []curves.MNKappaPoint{
				{M: 0, N: -100, Kappa: 0, EpsDelta: 0},
				{M: 1e6, N: 100, Kappa: 0, EpsDelta: 0},
			},
			Connector: conn,
		}
	}
	b := CompositeBeam{SpanLength: 8000, Nodes: nodes, ExternalLoading: load, ZeroSlipPosition: 4000}

	res := SolveSlip(b, nil, SlipConfig{Tolerance: 1e-12, MaxIterations: 3})
	if res.Converged {
		t.Fatal("expected failure to converge within the tiny iteration budget")
	}
	if res.Reason != SlipMaxIterations {
		t.Errorf("expected SlipMaxIterations, got %v", res.Reason)
	}
}
