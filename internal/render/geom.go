package render

// GeoM represents a 2D affine transformation matrix:
//
//	| a  b  tx |
//	| c  d  ty |
//
// The zero value is the identity, which is why a and d are stored minus one.
type GeoM struct {
	a1, b, c, d1, tx, ty float64
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

// Scale scales the image by (sx, sy).
func (g *GeoM) Scale(sx, sy float64) {
	a := (g.a1 + 1) * sx
	b := g.b * sx
	tx := g.tx * sx
	c := g.c * sy
	d := (g.d1 + 1) * sy
	ty := g.ty * sy

	g.a1 = a - 1
	g.b = b
	g.c = c
	g.d1 = d - 1
	g.tx = tx
	g.ty = ty
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	*g = GeoM{}
}

// Apply transforms the point (x, y).
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	return (g.a1+1)*x + g.b*y + g.tx, g.c*x + (g.d1+1)*y + g.ty
}

// Element returns the matrix element at row i, column j (0 <= i < 2, 0 <= j < 3).
func (g *GeoM) Element(i, j int) float64 {
	switch {
	case i == 0 && j == 0:
		return g.a1 + 1
	case i == 0 && j == 1:
		return g.b
	case i == 0 && j == 2:
		return g.tx
	case i == 1 && j == 0:
		return g.c
	case i == 1 && j == 1:
		return g.d1 + 1
	case i == 1 && j == 2:
		return g.ty
	default:
		panic("render: GeoM.Element: index out of range")
	}
}
