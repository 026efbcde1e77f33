package geom

// Box is an axis-aligned 3D bounding box.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box primed so the first Include call defines its extent.
func EmptyBox() Box {
	const inf = math32MaxFloat32
	return Box{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

const math32MaxFloat32 = 3.4028234663852886e+38

// Include enlarges a box to include a point.
func (b Box) Include(v Vec3) Box {
	return Box{Min: MinElem(b.Min, v), Max: MaxElem(b.Max, v)}
}

// Extend returns a box enclosing two boxes.
func (b Box) Extend(o Box) Box {
	return Box{Min: MinElem(b.Min, o.Min), Max: MaxElem(b.Max, o.Max)}
}

// Size returns the box's extent along each axis.
func (b Box) Size() Vec3 { return b.Max.Sub(b.Min) }

// Center returns the box's center point.
func (b Box) Center() Vec3 { return b.Min.Add(b.Size().Scale(0.5)) }
