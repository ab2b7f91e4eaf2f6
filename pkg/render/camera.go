package render

import (
	"math"

	"github.com/timo-eberl/tracy/pkg/core"
)

// Camera holds the derived camera state: an origin and an orthonormal basis
// (right, up, forward) with forward pointing from the origin toward the
// focus point.
type Camera struct {
	Origin core.Vec3
	Right  core.Vec3
	Up     core.Vec3
	Fwd    core.Vec3

	fovScale float64
	aspect   float64
	width    int
	height   int
}

var worldUp = core.NewVec3(0, 1, 0)

const fovY = 30.0 * math.Pi / 180.0

// NewCamera derives the camera state from the init boundary's spherical
// placement parameters: the origin orbits the focus point at cam_dist,
// parameterized by two angles.
func NewCamera(width, height int, angleX, angleY, dist float64, focus core.Vec3) *Camera {
	offset := core.NewVec3(
		math.Sin(angleY)*math.Cos(angleX),
		math.Sin(angleX),
		math.Cos(angleY)*math.Cos(angleX),
	)
	origin := focus.Add(offset.Multiply(dist))

	fwd := focus.Subtract(origin).Normalize()
	right := fwd.Cross(worldUp).Normalize()
	up := right.Cross(fwd).Normalize()

	return &Camera{
		Origin:   origin,
		Right:    right,
		Up:       up,
		Fwd:      fwd,
		fovScale: math.Tan(fovY / 2),
		aspect:   float64(width) / float64(height),
		width:    width,
		height:   height,
	}
}

// Ray generates the primary ray for a jittered film-plane position
// (filmX, filmY), given in pixel units with (0,0) at the top-left.
func (c *Camera) Ray(filmX, filmY float64) core.Ray {
	wx := 2*filmX/float64(c.width) - 1
	wy := 1 - 2*filmY/float64(c.height)
	dir := c.Fwd.
		Add(c.Right.Multiply(wx * c.fovScale * c.aspect)).
		Add(c.Up.Multiply(wy * c.fovScale)).
		Normalize()
	return core.NewRay(c.Origin, dir)
}
