package core

import "math"

// Reflect mirrors d about a surface with normal n: r = d - 2*dot(d,n)*n.
func Reflect(d, n Vec3) Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// FresnelSchlick returns the Schlick approximation to the Fresnel
// reflectance for a ray crossing an interface with relative index eta
// (eta1/eta2), given the unit incident direction d and the surface's
// outward-facing normal n, not flipped toward the ray. The cosine -d.Dot(n)
// is flipped again when the ray originates inside the surface (inside=true,
// where d.Dot(n) > 0).
func FresnelSchlick(d, n Vec3, eta float64, inside bool) float64 {
	cosThetaI := -d.Dot(n)
	if inside {
		cosThetaI = -cosThetaI
	}
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosThetaI, 5)
}

// Refract computes the refraction direction of incident direction d through
// an interface with outward-facing normal n (oriented so d.Dot(n) < 0) and
// relative index eta = eta1/eta2. ok is false on total internal reflection,
// in which case dir is the reflection direction.
func Refract(d, n Vec3, eta float64) (dir Vec3, ok bool) {
	negDdotN := -d.Dot(n)
	k := 1 - eta*eta*(1-negDdotN*negDdotN)
	if k < 0 {
		return Reflect(d, n), false
	}
	dir = d.Multiply(eta).Add(n.Multiply(eta*negDdotN - math.Sqrt(k)))
	return dir.Normalize(), true
}
