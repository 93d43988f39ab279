package level

import "github.com/younwookim/clst/internal/application/system"

// OneWay is a platform that can be jumped through from below and stood on
// from above
type OneWay struct {
	Rect
}

// IsSolid implements system.Collider
func (o OneWay) IsSolid(p system.Probe) bool {
	return o.Contains(p.X, p.Y) && oneWaySolid(p, o.Y)
}

// oneWaySolid decides a probe against a one-way surface whose top row is top.
// Only downward probes of a body that is not rising and whose feet are still
// above the surface are blocked.
func oneWaySolid(p system.Probe, top int) bool {
	if p.DirY <= 0 || p.Body.Speed.Y < 0 {
		return false
	}
	feet := p.Body.Y + p.Body.Hitbox.Y + p.Body.Hitbox.H - 1
	return feet < top
}
