package scene

import (
	"math"
	"testing"

	"github.com/timo-eberl/tracy/pkg/core"
)

func TestSphereHit_FrontFace(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1}
	r := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1))

	hit, ok := sphereHit(s, r)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("t = %f, want 1.0", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("p = %v, want (0,0,-1)", hit.Point)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("n = %v, want (0,0,-1)", hit.Normal)
	}
	if hit.Inside {
		t.Errorf("expected inside = false")
	}
}

func TestSphereHit_Inside(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1}
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit, ok := sphereHit(s, r)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("t = %f, want 1.0", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("p = %v, want (1,0,0)", hit.Point)
	}
	if !hit.Inside {
		t.Errorf("expected inside = true")
	}
}

func TestSphereHit_Miss(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1}
	r := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(1, 0, 0))
	if _, ok := sphereHit(s, r); ok {
		t.Errorf("expected miss")
	}
}

func TestTriangleHit_MollerTrumbore(t *testing.T) {
	tri := &Triangle{
		V0: core.NewVec3(0, 0, 0),
		V1: core.NewVec3(1, 0, 0),
		V2: core.NewVec3(0, 1, 0),
	}
	r := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))

	hit, ok := triangleHit(tri, r)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("t = %f, want 1.0", hit.T)
	}
	want := core.NewVec3(0.25, 0.25, 0)
	if hit.Point.Subtract(want).Length() > 1e-9 {
		t.Errorf("p = %v, want %v", hit.Point, want)
	}
}

func TestTriangleHit_BackFaceOneSided(t *testing.T) {
	tri := &Triangle{
		V0: core.NewVec3(0, 0, 0),
		V1: core.NewVec3(0, 1, 0),
		V2: core.NewVec3(1, 0, 0),
		TwoSided: false,
	}
	// Ray approaches from +z, hitting the back face (normal points -z).
	r := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	hit, ok := triangleHit(tri, r)
	if !ok {
		t.Fatalf("expected hit on back face")
	}
	if !hit.Inside {
		t.Errorf("expected inside = true for a one-sided back-face hit")
	}
}

func TestTriangleHit_BackFaceTwoSided(t *testing.T) {
	tri := &Triangle{
		V0: core.NewVec3(0, 0, 0),
		V1: core.NewVec3(0, 1, 0),
		V2: core.NewVec3(1, 0, 0),
		TwoSided: true,
	}
	r := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	hit, ok := triangleHit(tri, r)
	if !ok {
		t.Fatalf("expected hit on back face")
	}
	if hit.Inside {
		t.Errorf("expected inside = false for a two-sided back-face hit (normal flipped instead)")
	}
	if hit.Normal.Z <= 0 {
		t.Errorf("expected flipped normal facing the ray, got %v", hit.Normal)
	}
}

func TestSceneHit_PicksNearest(t *testing.T) {
	s := &Scene{Primitives: []Primitive{
		{Material: DIFFUSE, Sphere: &Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1}},
		{Material: DIFFUSE, Sphere: &Sphere{Center: core.NewVec3(0, 0, -2), Radius: 1}},
	}}
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, prim, ok := s.Hit(r)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if prim != &s.Primitives[1] {
		t.Errorf("expected the nearer sphere to win")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("t = %f, want 1.0", hit.T)
	}
}
