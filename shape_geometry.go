package lottie

// directionReversed is the "d" value of shapes drawn counter-clockwise.
const directionReversed = 3

// rectPath returns the rectangle centered at pos with the given size and corner roundness.
func rectPath(pos, size Point, roundness float64, direction int) *Path {
	topLeft := pos.Sub(size.Div(2.0))
	p := RoundedRectangle(topLeft.X, topLeft.Y, size.X, size.Y, roundness)
	return directed(p, direction)
}

// ellipsePath returns the ellipse centered at pos with the given size.
func ellipsePath(pos, size Point, direction int) *Path {
	p := Ellipse(pos.X, pos.Y, size.X/2.0, size.Y/2.0)
	return directed(p, direction)
}

// roundPath returns the circle of diameter r, which fits the square of size r whose top-left corner is at pos - r/2.
func roundPath(pos Point, r float64, direction int) *Path {
	p := Circle(pos.X, pos.Y, r/2.0)
	return directed(p, direction)
}

func directed(p *Path, direction int) *Path {
	if direction == directionReversed {
		return p.Reverse()
	}
	return p
}
