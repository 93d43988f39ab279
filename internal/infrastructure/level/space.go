package level

import (
	"sync"

	"github.com/solarlune/resolv"

	"github.com/younwookim/clst/internal/application/system"
)

const (
	tagSolid  = "solid"
	tagOneWay = "oneway"
)

// Space answers probes with a resolv spatial hash. Each probe moves a 1x1
// object to the pixel and checks it against the tagged shapes in its cell,
// so a Space is safe for concurrent use only through its mutex.
type Space struct {
	mu     sync.Mutex
	space  *resolv.Space
	probe  *resolv.Object
	width  int
	height int
}

// NewSpace creates an empty space of width x height pixels
func NewSpace(width, height, cellSize int) *Space {
	s := &Space{
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
		probe:  resolv.NewObject(0, 0, 1, 1),
		width:  width,
		height: height,
	}
	s.probe.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	s.space.Add(s.probe)
	return s
}

// SpaceFromGrid builds a space with one shape per horizontal run of equal
// tiles
func SpaceFromGrid(g *Grid) *Space {
	s := NewSpace(g.PixelWidth(), g.PixelHeight(), g.TileSize)
	for ty := 0; ty < g.Height; ty++ {
		for tx := 0; tx < g.Width; {
			kind := g.Tile(tx, ty)
			end := tx + 1
			for end < g.Width && g.Tile(end, ty) == kind {
				end++
			}
			r := Rect{X: tx * g.TileSize, Y: ty * g.TileSize, W: (end - tx) * g.TileSize, H: g.TileSize}
			switch kind {
			case TileSolid:
				s.AddSolid(r)
			case TileOneWay:
				s.AddOneWay(r)
			}
			tx = end
		}
	}
	return s
}

// AddSolid adds a fully solid rectangle
func (s *Space) AddSolid(r Rect) {
	s.add(r, tagSolid)
}

// AddOneWay adds a one-way platform rectangle
func (s *Space) AddOneWay(r Rect) {
	s.add(r, tagOneWay)
}

func (s *Space) add(r Rect, tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), tag)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(r.W), float64(r.H)))
	s.space.Add(obj)
}

// Len returns the number of shapes, excluding the probe
func (s *Space) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.space.Objects()) - 1
}

// IsSolid implements system.Collider. Pixels outside the space are solid.
func (s *Space) IsSolid(p system.Probe) bool {
	if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.probe.X = float64(p.X)
	s.probe.Y = float64(p.Y)
	s.probe.Update()

	c := s.probe.Check(0, 0, tagSolid, tagOneWay)
	if c == nil {
		return false
	}
	for _, obj := range c.Objects {
		r := Rect{X: int(obj.X), Y: int(obj.Y), W: int(obj.W), H: int(obj.H)}
		if !r.Contains(p.X, p.Y) {
			continue
		}
		if !obj.HasTags(tagOneWay) {
			return true
		}
		if oneWaySolid(p, r.Y) {
			return true
		}
	}
	return false
}
