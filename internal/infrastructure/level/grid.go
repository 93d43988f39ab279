package level

import "github.com/younwookim/clst/internal/application/system"

// Tile is the collision kind of one grid cell
type Tile uint8

const (
	TileEmpty Tile = iota
	TileSolid
	TileOneWay // solid only when landed on from above
)

// Rect is an axis-aligned pixel rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether pixel (px, py) is inside r
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Grid is a tile map answering solidity probes. Pixels outside the map are
// solid so actors cannot leave it.
type Grid struct {
	Width    int // tiles
	Height   int // tiles
	TileSize int // pixels
	Tiles    []Tile
	SpawnX   int // pixels
	SpawnY   int // pixels
}

// NewGrid creates an empty grid
func NewGrid(width, height, tileSize int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    make([]Tile, width*height),
	}
}

// Set changes the tile at tile coordinates (tx, ty). Out of range is ignored.
func (g *Grid) Set(tx, ty int, t Tile) {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return
	}
	g.Tiles[ty*g.Width+tx] = t
}

// Tile returns the tile at the given tile coordinates
func (g *Grid) Tile(tx, ty int) Tile {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return TileSolid
	}
	return g.Tiles[ty*g.Width+tx]
}

// TileAt returns the tile under pixel (px, py)
func (g *Grid) TileAt(px, py int) Tile {
	return g.Tile(floorDiv(px, g.TileSize), floorDiv(py, g.TileSize))
}

// PixelWidth returns the map width in pixels
func (g *Grid) PixelWidth() int {
	return g.Width * g.TileSize
}

// PixelHeight returns the map height in pixels
func (g *Grid) PixelHeight() int {
	return g.Height * g.TileSize
}

// IsSolid implements system.Collider
func (g *Grid) IsSolid(p system.Probe) bool {
	switch g.TileAt(p.X, p.Y) {
	case TileSolid:
		return true
	case TileOneWay:
		return oneWaySolid(p, floorDiv(p.Y, g.TileSize)*g.TileSize)
	default:
		return false
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
