package drawable

import (
	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Measurement caches one holder's content bounds. Objects sharing a
// drawable each keep their own Measurement, so a cached result never
// crosses holders.
type Measurement struct {
	cookies attr.Cookies
	bounds  geom.Rect
	valid   bool
	count   int
}

// Measure returns d.Update(src), reusing the previous result while none of
// the attributes d depends on changed versions.
func (m *Measurement) Measure(d Drawable, src Source) geom.Rect {
	changed := !m.valid
	for _, k := range d.DependsOn() {
		c, err := src.GetCookie(k, &m.cookies[k])
		if err != nil || c {
			changed = true
		}
	}
	if !changed {
		return m.bounds
	}
	m.bounds = d.Update(src)
	m.valid = true
	m.count++
	return m.bounds
}

// Count returns how many times Measure called the drawable.
func (m *Measurement) Count() int { return m.count }

// Reset drops the cached result.
func (m *Measurement) Reset() { *m = Measurement{} }
