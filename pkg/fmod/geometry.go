package fmod

import (
	"context"
	"runtime"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Geometry is an occlusion mesh. It holds its System alive until Release.
type Geometry struct {
	res
	sys *System
}

func newGeometry(sys *System, handle uintptr) *Geometry {
	g := &Geometry{sys: sys}
	g.handle = handle
	runtime.SetFinalizer(g, func(g *Geometry) {
		if g.state.Load() == stateLive {
			g.sys.log.Warn(context.Background(), "geometry leaked without Release",
				logging.Handle("geometry", g.handle))
		}
	})
	return g
}

// Release frees the mesh and drops the strong reference on the system.
func (g *Geometry) Release() error {
	if !g.release() {
		_, err := g.raw()
		return err
	}
	runtime.SetFinalizer(g, nil)
	err := resultErr("GeometryRelease", bindings.GeometryRelease(g.handle))
	g.sys.life.Release()
	return err
}

// AddPolygon adds one occluding face (at least three vertices) and returns
// its index. Occlusion factors are 0 (transparent) to 1 (fully occluding).
func (g *Geometry) AddPolygon(directOcclusion, reverbOcclusion float32, doubleSided bool, vertices []Vector) (int, error) {
	h, err := g.raw()
	if err != nil {
		return 0, err
	}
	if len(vertices) < 3 {
		return 0, &Error{Op: "GeometryAddPolygon", Code: bindings.ErrInvalidParam}
	}
	var index int32
	r := bindings.GeometryAddPolygon(h, directOcclusion, reverbOcclusion,
		bindings.FromBool(doubleSided), int32(len(vertices)), &vertices[0], &index)
	if err := resultErr("GeometryAddPolygon", r); err != nil {
		return 0, err
	}
	return int(index), nil
}

// SetActive switches the mesh's occlusion contribution on or off.
func (g *Geometry) SetActive(active bool) error {
	h, err := g.raw()
	if err != nil {
		return err
	}
	return resultErr("GeometrySetActive", bindings.GeometrySetActive(h, bindings.FromBool(active)))
}

// PolygonCount reports how many polygons the mesh holds.
func (g *Geometry) PolygonCount() (int, error) {
	h, err := g.raw()
	if err != nil {
		return 0, err
	}
	var n int32
	if err := resultErr("GeometryGetNumPolygons", bindings.GeometryGetNumPolygons(h, &n)); err != nil {
		return 0, err
	}
	return int(n), nil
}
