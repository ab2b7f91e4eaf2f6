package scene

import (
	"math"

	"github.com/timo-eberl/tracy/pkg/core"
)

// HitInfo is the result of a successful intersection: the parametric
// distance along the ray, the world-space hit point, the unit surface
// normal, and whether the ray originated inside the primitive. The normal is
// not flipped when Inside is set (sphere exit, back face of a one-sided
// triangle); callers flip it themselves. A two-sided triangle hit from behind
// reports Inside=false with its normal already flipped toward the ray.
type HitInfo struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3
	Inside bool
}

const selfOcclusionEpsilon = 1e-8

// sphereHit solves ||o + t*d - c||^2 = r^2.
func sphereHit(s *Sphere, r core.Ray) (HitInfo, bool) {
	oc := r.Origin.Subtract(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitInfo{}, false
	}
	sqrtD := math.Sqrt(discriminant)
	t0 := (-halfB - sqrtD) / a
	t1 := (-halfB + sqrtD) / a
	if t1 <= 0 {
		return HitInfo{}, false
	}
	t := t0
	if t0 <= 0 {
		t = t1
	}
	p := r.At(t)
	n := p.Subtract(s.Center).Normalize()
	return HitInfo{T: t, Point: p, Normal: n, Inside: t0 <= 0}, true
}

// triangleHit implements the Moller-Trumbore intersection test.
func triangleHit(tri *Triangle, r core.Ray) (HitInfo, bool) {
	const eps = 1e-7
	e1 := tri.V1.Subtract(tri.V0)
	e2 := tri.V2.Subtract(tri.V0)
	h := r.Direction.Cross(e2)
	a := e1.Dot(h)
	if absf(a) < eps {
		return HitInfo{}, false
	}
	f := 1.0 / a
	s := r.Origin.Subtract(tri.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return HitInfo{}, false
	}
	q := s.Cross(e1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return HitInfo{}, false
	}
	t := f * e2.Dot(q)
	if t <= eps {
		return HitInfo{}, false
	}

	p := r.At(t)
	ng := e1.Cross(e2).Normalize()
	n := ng
	inside := false
	if r.Direction.Dot(ng) > 0 {
		if tri.TwoSided {
			n = ng.Negate()
			inside = false
		} else {
			inside = true
		}
	}
	return HitInfo{T: t, Point: p, Normal: n, Inside: inside}, true
}

// Hit dispatches to the primitive's geometry variant.
func (p *Primitive) Hit(r core.Ray) (HitInfo, bool) {
	if p.Sphere != nil {
		return sphereHit(p.Sphere, r)
	}
	return triangleHit(p.Triangle, r)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
