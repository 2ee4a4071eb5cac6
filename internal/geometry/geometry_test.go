package geometry

import "testing"

func TestRectangleArea(t *testing.T) {
	r, err := NewRectangle(0, 200, 0, 15)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	if got, want := r.Area(), 3000.0; got != want {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got, want := r.Width(100), 15.0; got != want {
		t.Errorf("Width(100) = %v, want %v", got, want)
	}
}

func TestRectangleNormalisesInvertedEdges(t *testing.T) {
	r, err := NewRectangle(200, 0, 15, 0)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	if r.TopEdge != 0 || r.BottomEdge != 200 {
		t.Errorf("expected edges normalised, got top=%v bottom=%v", r.TopEdge, r.BottomEdge)
	}
	if r.Left != 0 || r.Right != 15 {
		t.Errorf("expected left/right normalised, got left=%v right=%v", r.Left, r.Right)
	}
}

func TestRectangleSplitAt(t *testing.T) {
	r, _ := NewRectangle(0, 200, 0, 15)
	top, bottom, ok := r.SplitAt(50)
	if !ok {
		t.Fatal("SplitAt should succeed within bounds")
	}
	if got, want := top.Area(), 50.0*15; got != want {
		t.Errorf("top.Area() = %v, want %v", got, want)
	}
	if got, want := bottom.Area(), 150.0*15; got != want {
		t.Errorf("bottom.Area() = %v, want %v", got, want)
	}
	if _, _, ok := r.SplitAt(0); ok {
		t.Error("SplitAt at top edge should fail")
	}
}

func TestTrapezoidWidthIsLinear(t *testing.T) {
	tz, err := NewTrapezoid(0, 100, 2000, 500, 0, 0)
	if err != nil {
		t.Fatalf("NewTrapezoid: %v", err)
	}
	if got, want := tz.Width(0), 2000.0; got != want {
		t.Errorf("Width(0) = %v, want %v", got, want)
	}
	if got, want := tz.Width(100), 500.0; got != want {
		t.Errorf("Width(100) = %v, want %v", got, want)
	}
	if got, want := tz.Width(50), 1250.0; got != want {
		t.Errorf("Width(50) = %v, want %v", got, want)
	}
}

func TestTrapezoidArea(t *testing.T) {
	tz, _ := NewTrapezoid(0, 100, 2000, 500, 0, 0)
	if got, want := tz.Area(), 0.5*(2000+500)*100; got != want {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestTrapezoidRejectsInvertedEdges(t *testing.T) {
	if _, err := NewTrapezoid(100, 0, 2000, 500, 0, 0); err == nil {
		t.Error("expected error for inverted edges")
	}
}

func TestTrapezoidRejectsNegativeWidth(t *testing.T) {
	if _, err := NewTrapezoid(0, 100, -1, 500, 0, 0); err == nil {
		t.Error("expected error for negative width")
	}
}

func TestCircleAreaAndSplit(t *testing.T) {
	c, err := NewCircle(25, 0, 100)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	want := 25.0 * 25.0 * 3.141592653589793 / 4
	if got := c.Area(); abs(got-want) > 1e-9 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if _, _, ok := c.SplitAt(50); ok {
		t.Error("Circle must not be splittable")
	}
}

func TestNewCircleRejectsNonPositiveDiameter(t *testing.T) {
	if _, err := NewCircle(0, 0, 0); err == nil {
		t.Error("expected error for zero diameter")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
