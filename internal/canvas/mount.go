package canvas

import "github.com/econum/cableviz/internal/gauge"

// Mount lends a Raster to one gauge renderer at a time. A Mount starts
// mounted; after Detach it never hands the raster out again.
type Mount struct {
	raster   *Raster
	held     bool
	detached bool
}

// NewMount wraps raster. A nil raster behaves as a surface that is not
// mounted yet.
func NewMount(raster *Raster) *Mount {
	return &Mount{raster: raster}
}

// Acquire hands out the raster unless it is missing, already held or detached.
func (m *Mount) Acquire() (gauge.Surface, bool) {
	if m.raster == nil || m.held || m.detached {
		return nil, false
	}
	m.held = true
	return m.raster, true
}

// Release returns the raster.
func (m *Mount) Release(gauge.Surface) { m.held = false }

// Detach unmounts the raster.
func (m *Mount) Detach() {
	m.detached = true
	m.held = false
}

// Held reports whether a renderer currently owns the raster.
func (m *Mount) Held() bool { return m.held }

// Raster returns the underlying raster.
func (m *Mount) Raster() *Raster { return m.raster }
