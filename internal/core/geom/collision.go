package geom

// CollisionDirection classifies on which axis subject meets obstacle.
//
// The result is a unit-axis vector pointing from subject towards obstacle:
// X is ±1 when the horizontal center distance dominates, Y is ±1 when the
// vertical one does, and equal distances yield the zero vector. The
// classification only holds for square obstacles; a non-square obstacle
// can be classified on the wrong axis and is left uncorrected.
func CollisionDirection(subject, obstacle Rect) Vec2 {
	sc := subject.Center()
	oc := obstacle.Center()
	dx := oc.X - sc.X
	dy := oc.Y - sc.Y

	var dir Vec2
	switch {
	case abs(dx) > abs(dy):
		dir.X = sign(dx)
	case abs(dx) < abs(dy):
		dir.Y = sign(dy)
	}
	return dir
}

// SnapOut moves subject flush against the edge of obstacle selected by dir,
// as returned by CollisionDirection. A zero dir leaves subject untouched.
func SnapOut(subject *Rect, obstacle Rect, dir Vec2) {
	switch {
	case dir.Y < 0:
		subject.SetTop(obstacle.Bottom())
	case dir.Y > 0:
		subject.SetBottom(obstacle.Top())
	case dir.X < 0:
		subject.SetLeft(obstacle.Right())
	case dir.X > 0:
		subject.SetRight(obstacle.Left())
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func sign(f float64) float64 {
	if f > 0 {
		return 1
	}
	return -1
}
