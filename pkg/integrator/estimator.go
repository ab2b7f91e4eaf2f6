package integrator

import (
	"math"

	"github.com/timo-eberl/tracy/pkg/core"
	"github.com/timo-eberl/tracy/pkg/scene"
)

// MaxDepth caps the bounce recursion. Energy lost beyond this depth is
// accepted bias at shallow paths rather than a correctness bug.
const MaxDepth = 4

const selfOcclusionEpsilon = 1e-8

// Radiance recursively estimates the linear-RGB radiance arriving along ray
// r, dispatching on the material of the nearest hit. It is the sole entry
// point a primary ray's path starts from; every recursive call re-enters it
// with an incremented depth and a fresh offset origin to avoid
// self-occlusion.
func Radiance(s *scene.Scene, r core.Ray, depth int, rng core.RNG) core.Vec3 {
	if depth > MaxDepth {
		return core.Vec3{}
	}

	hit, prim, ok := s.Hit(r)
	if !ok {
		return core.Vec3{}
	}

	switch prim.Material {
	case scene.EMISSIVE:
		return emissive(hit, prim)
	case scene.DIFFUSE:
		return diffuse(s, r, hit, prim, depth, rng)
	case scene.MIRROR:
		return mirror(s, r, hit, prim, depth, rng)
	case scene.REFRACTIVE:
		return refractive(s, r, hit, prim, depth, rng)
	default:
		return core.Vec3{}
	}
}

func emissive(hit scene.HitInfo, prim *scene.Primitive) core.Vec3 {
	if hit.Inside {
		return core.Vec3{}
	}
	return prim.Color.Multiply(1 / math.Pi)
}

func diffuse(s *scene.Scene, r core.Ray, hit scene.HitInfo, prim *scene.Primitive, depth int, rng core.RNG) core.Vec3 {
	if hit.Inside {
		return core.Vec3{}
	}
	dir, _ := core.CosineHemisphere(hit.Normal, rng.Float64(), rng.Float64())
	origin := hit.Point.Add(hit.Normal.Multiply(selfOcclusionEpsilon))
	lIn := Radiance(s, core.NewRay(origin, dir), depth+1, rng)
	// BRDF = color/pi, cos(theta) and 1/PDF cancel to a plain Hadamard
	// product under cosine-weighted sampling.
	return prim.Color.MultiplyVec(lIn)
}

func mirror(s *scene.Scene, r core.Ray, hit scene.HitInfo, prim *scene.Primitive, depth int, rng core.RNG) core.Vec3 {
	n := hit.Normal
	if hit.Inside {
		n = n.Negate()
	}
	dir := core.Reflect(r.Direction, n)
	origin := hit.Point.Add(n.Multiply(selfOcclusionEpsilon))
	lReflected := Radiance(s, core.NewRay(origin, dir), depth+1, rng)
	return prim.Color.MultiplyVec(lReflected)
}

func refractive(s *scene.Scene, r core.Ray, hit scene.HitInfo, prim *scene.Primitive, depth int, rng core.RNG) core.Vec3 {
	n := hit.Normal
	if hit.Inside {
		n = n.Negate()
	}

	ior := prim.Color.X
	eta := 1 / ior
	if hit.Inside {
		eta = ior
	}

	reflectance := core.FresnelSchlick(r.Direction, hit.Normal, eta, hit.Inside)

	if rng.Float64() < reflectance {
		dir := core.Reflect(r.Direction, n)
		origin := hit.Point.Add(n.Multiply(selfOcclusionEpsilon))
		// No multiplicative weight: the branch probability equals the
		// Fresnel weight, so the unbiased estimator is the child radiance
		// returned as-is.
		return Radiance(s, core.NewRay(origin, dir), depth+1, rng)
	}

	dir, ok := core.Refract(r.Direction, n, eta)
	if !ok {
		// Total internal reflection short-circuit: the reflection branch
		// should have been taken stochastically; this path contributes
		// nothing.
		return core.Vec3{}
	}
	origin := hit.Point.Subtract(n.Multiply(selfOcclusionEpsilon))
	return Radiance(s, core.NewRay(origin, dir), depth+1, rng)
}
