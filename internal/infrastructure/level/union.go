package level

import "github.com/younwookim/clst/internal/application/system"

// Union is solid wherever any of its colliders is. Nil entries are skipped.
type Union []system.Collider

// IsSolid implements system.Collider
func (u Union) IsSolid(p system.Probe) bool {
	for _, c := range u {
		if c != nil && c.IsSolid(p) {
			return true
		}
	}
	return false
}
