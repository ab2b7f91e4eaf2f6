package scene

import "github.com/timo-eberl/tracy/pkg/core"

// NewCornellScene builds the compiled-in fixed scene: a room bounded by
// x in [-1.5,1.5], y in [0,2.4], z in [-2,2], a mirror sphere, a refractive
// sphere, and a shielded emissive area light. Implementers may parameterize
// the returned scene (see Overrides) but must preserve this default.
func NewCornellScene() *Scene {
	var prims []Primitive

	const (
		xMin, xMax = -1.5, 1.5
		yMin, yMax = 0.0, 2.4
		zMin, zMax = -2.0, 2.0
	)

	red := core.NewVec3(0.75, 0.25, 0.25)
	blue := core.NewVec3(0.25, 0.25, 0.75)
	gray := core.NewVec3(0.75, 0.75, 0.75)

	v := func(x, y, z float64) core.Vec3 { return core.NewVec3(x, y, z) }
	quad := func(a, b, c, d core.Vec3, color core.Vec3) {
		prims = append(prims,
			NewDiffuseTriangle(a, b, c, color),
			NewDiffuseTriangle(a, c, d, color),
		)
	}

	// Five walls (ten triangles), matching the original reference's five
	// wall spheres (left/right/back/floor/ceiling): the wall nearest the
	// camera is deliberately left open so the camera can see into the room,
	// the same box-is-open-on-one-side convention the original uses.
	// Left wall (red), facing +x.
	quad(v(xMin, yMin, zMin), v(xMin, yMax, zMin), v(xMin, yMax, zMax), v(xMin, yMin, zMax), red)
	// Right wall (blue), facing -x.
	quad(v(xMax, yMin, zMax), v(xMax, yMax, zMax), v(xMax, yMax, zMin), v(xMax, yMin, zMin), blue)
	// Back wall (gray), facing +z into the room.
	quad(v(xMin, yMin, zMin), v(xMax, yMin, zMin), v(xMax, yMax, zMin), v(xMin, yMax, zMin), gray)
	// Floor (gray), facing +y.
	quad(v(xMin, yMin, zMin), v(xMin, yMin, zMax), v(xMax, yMin, zMax), v(xMax, yMin, zMin), gray)
	// Ceiling (gray), facing -y.
	quad(v(xMin, yMax, zMax), v(xMin, yMax, zMin), v(xMax, yMax, zMin), v(xMax, yMax, zMax), gray)

	// Mirror sphere.
	prims = append(prims, Primitive{
		Material: MIRROR,
		Color:    core.NewVec3(1, 1, 1),
		Sphere:   &Sphere{Center: v(-0.7, 0.5, -0.6), Radius: 0.5},
	})

	// Refractive sphere; IOR stored in Color.X.
	prims = append(prims, Primitive{
		Material: REFRACTIVE,
		Color:    core.NewVec3(1.5, 0, 0),
		Sphere:   &Sphere{Center: v(0.7, 0.5, 0.6), Radius: 0.5},
	})

	// Emissive 1x1m rectangle at y=2.399, centered at the origin.
	const lightY = 2.399
	radiosity := core.NewVec3(5*21.5, 5*21.5, 5*21.5)
	l0, l1, l2, l3 := v(-0.5, lightY, -0.5), v(0.5, lightY, -0.5), v(0.5, lightY, 0.5), v(-0.5, lightY, 0.5)
	prims = append(prims,
		Primitive{Material: EMISSIVE, Color: radiosity, Triangle: &Triangle{V0: l0, V1: l1, V2: l2}},
		Primitive{Material: EMISSIVE, Color: radiosity, Triangle: &Triangle{V0: l0, V1: l2, V2: l3}},
	)

	// Eight dark-gray, two-sided shield triangles forming a four-sided,
	// 45-degree-angled skirt around the light, one quad (two triangles) per
	// side, sloping outward and downward from the light's rim.
	shield := core.NewVec3(0.1, 0.1, 0.1)
	const drop = 0.2 // 45 degrees: equal outward and downward offset
	shieldQuad := func(innerA, innerB core.Vec3, outerA, outerB core.Vec3) {
		prims = append(prims,
			Primitive{Material: DIFFUSE, Color: shield, Triangle: &Triangle{V0: innerA, V1: innerB, V2: outerB, TwoSided: true}},
			Primitive{Material: DIFFUSE, Color: shield, Triangle: &Triangle{V0: innerA, V1: outerB, V2: outerA, TwoSided: true}},
		)
	}
	shieldQuad(l0, l1, v(-0.5-drop, lightY-drop, -0.5-drop), v(0.5+drop, lightY-drop, -0.5-drop)) // -z side
	shieldQuad(l1, l2, v(0.5+drop, lightY-drop, -0.5-drop), v(0.5+drop, lightY-drop, 0.5+drop))   // +x side
	shieldQuad(l2, l3, v(0.5+drop, lightY-drop, 0.5+drop), v(-0.5-drop, lightY-drop, 0.5+drop))   // +z side
	shieldQuad(l3, l0, v(-0.5-drop, lightY-drop, 0.5+drop), v(-0.5-drop, lightY-drop, -0.5-drop)) // -x side

	return &Scene{Primitives: prims}
}
