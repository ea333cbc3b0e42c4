package render

import "testing"

func TestGeoMZeroValueIsIdentity(t *testing.T) {
	var g GeoM
	x, y := g.Apply(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("Expected (3, 4), got (%v, %v)", x, y)
	}
}

func TestGeoMTranslateThenScale(t *testing.T) {
	var g GeoM
	g.Translate(10, 20)
	g.Scale(2, 3)

	x, y := g.Apply(1, 1)
	if x != 22 || y != 63 {
		t.Errorf("Expected (22, 63), got (%v, %v)", x, y)
	}
	if g.Element(0, 0) != 2 || g.Element(1, 1) != 3 {
		t.Errorf("Expected scale elements (2, 3), got (%v, %v)", g.Element(0, 0), g.Element(1, 1))
	}
	if g.Element(0, 2) != 20 || g.Element(1, 2) != 60 {
		t.Errorf("Expected translation (20, 60), got (%v, %v)", g.Element(0, 2), g.Element(1, 2))
	}

	g.Reset()
	if x, y := g.Apply(5, 5); x != 5 || y != 5 {
		t.Errorf("Expected identity after Reset, got (%v, %v)", x, y)
	}
}
