package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// ObjectKind tags the variants a scene can hold
type ObjectKind int

const (
	ObjectSphere ObjectKind = iota + 1
	ObjectLight
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectSphere:
		return "sphere"
	case ObjectLight:
		return "light"
	default:
		return "unknown"
	}
}

// SceneObject is anything that can be appended to a scene.
// The set of implementations is closed: geometry.Sphere and the lights package.
type SceneObject interface {
	Kind() ObjectKind
}
