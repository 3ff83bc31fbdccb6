package scene

// GeometryKind is the primitive shape of a Geometry.
type GeometryKind int

const (
	KindBox GeometryKind = iota
	KindSphere
	KindCylinder
)

func (k GeometryKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	}
	return "unknown"
}

// Geometry describes a primitive shape and its dimensions. It is comparable, so equal
// descriptors can share one GPU mesh.
type Geometry struct {
	Kind GeometryKind

	// Box
	Width, Height, Depth float32

	// Sphere
	Radius float32

	// Cylinder (Height is shared with Box)
	RadiusTop, RadiusBottom float32

	// Tessellation: radial segments for sphere/cylinder, rings for sphere.
	Segments int
	Rings    int
}

// Box returns an axis-aligned box centred on the origin.
func Box(width, height, depth float32) Geometry {
	return Geometry{Kind: KindBox, Width: width, Height: height, Depth: depth}
}

// Sphere returns a UV sphere. widthSegments is the number of slices, heightSegments the rings.
func Sphere(radius float32, widthSegments, heightSegments int) Geometry {
	return Geometry{Kind: KindSphere, Radius: radius, Segments: widthSegments, Rings: heightSegments}
}

// Cylinder returns a Y-aligned cylinder centred on the origin. The radii may differ
// for a tapered shape such as a cue stick.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments int) Geometry {
	return Geometry{Kind: KindCylinder, RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height, Segments: radialSegments}
}

// Size returns the axis-aligned extent of the shape before any transform.
func (g Geometry) Size() Vec3 {
	switch g.Kind {
	case KindBox:
		return Vec3{g.Width, g.Height, g.Depth}
	case KindSphere:
		d := g.Radius * 2
		return Vec3{d, d, d}
	case KindCylinder:
		d := 2 * max(g.RadiusTop, g.RadiusBottom)
		return Vec3{d, g.Height, d}
	}
	return Vec3{}
}
