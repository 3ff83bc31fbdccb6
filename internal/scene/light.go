package scene

// LightType selects how a light contributes to shading.
type LightType int

const (
	// LightDirectional shines from Position toward the origin with no falloff.
	LightDirectional LightType = iota
	// LightAmbient adds uniform fill to every surface.
	LightAmbient
	// LightPoint radiates from Position and fades to zero at Distance.
	LightPoint
)

func (t LightType) String() string {
	switch t {
	case LightDirectional:
		return "directional"
	case LightAmbient:
		return "ambient"
	case LightPoint:
		return "point"
	}
	return "unknown"
}

// Light is immutable once added to a graph.
type Light struct {
	Type      LightType
	Color     Color
	Intensity float32
	Position  Vec3
	Distance  float32 // point only; 0 means unbounded
	Decay     float32 // point only
}
