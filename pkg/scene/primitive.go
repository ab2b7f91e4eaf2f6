package scene

import "github.com/timo-eberl/tracy/pkg/core"

// MaterialKind selects the BRDF/behavior a Primitive's surface follows.
type MaterialKind int

const (
	DIFFUSE MaterialKind = iota
	EMISSIVE
	MIRROR
	REFRACTIVE
)

// Sphere is a closed-form geometry variant: center and radius > 0.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// Triangle is a closed-form geometry variant: three vertices plus a flag
// controlling whether hits on the back face are accepted.
type Triangle struct {
	V0, V1, V2 core.Vec3
	TwoSided   bool
}

// Primitive is a tagged record: a material kind, a color triple whose
// meaning depends on the material (albedo, radiosity in W/m^2, reflectance
// rho, or an index of refraction stored in Color.X), and exactly one of the
// two geometry variants.
type Primitive struct {
	Material MaterialKind
	Color    core.Vec3

	Sphere   *Sphere
	Triangle *Triangle
}

// NewDiffuseTriangle builds a DIFFUSE one-sided room triangle; its front face
// is the side that (v1-v0) x (v2-v0) points toward.
func NewDiffuseTriangle(v0, v1, v2 core.Vec3, albedo core.Vec3) Primitive {
	return Primitive{
		Material: DIFFUSE,
		Color:    albedo,
		Triangle: &Triangle{V0: v0, V1: v1, V2: v2, TwoSided: false},
	}
}
