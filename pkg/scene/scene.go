package scene

import "github.com/timo-eberl/tracy/pkg/core"

// Scene is a fixed, ordered list of Primitives. Its geometry is never changed
// after construction; Overrides.Apply may reweight colors in place, and
// nothing mutates it during a refine pass.
type Scene struct {
	Primitives []Primitive
}

// Hit performs a linear scan of the scene, keeping the smallest valid t and
// the primitive it belongs to. No acceleration structure is used: the scene
// holds only a few dozen primitives, so a spatial index would add complexity
// without a measurable benefit.
func (s *Scene) Hit(r core.Ray) (HitInfo, *Primitive, bool) {
	var closest HitInfo
	var winner *Primitive
	found := false

	for i := range s.Primitives {
		prim := &s.Primitives[i]
		hit, ok := prim.Hit(r)
		if !ok {
			continue
		}
		if !found || hit.T < closest.T {
			closest = hit
			winner = prim
			found = true
		}
	}

	return closest, winner, found
}
