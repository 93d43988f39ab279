package level

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

const (
	// DefaultTMXLayer is the tile layer read for collision
	DefaultTMXLayer = "collision"
	// SpawnObjectGroup holds the player spawn object
	SpawnObjectGroup = "spawn"
	// oneWayProperty marks a tileset tile as a one-way platform
	oneWayProperty = "oneWay"
)

// LoadTMX reads a Tiled map and turns the named tile layer into a grid. Any
// non-empty tile is solid unless its tileset tile has oneWay=true. The first
// object in the "spawn" group sets the spawn point.
func LoadTMX(fsys fs.FS, tmxPath, layerName string) (*Grid, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if layerName == "" {
		layerName = DefaultTMXLayer
	}

	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("TMX %s: no tile layer %q", tmxPath, layerName)
	}

	g, err := gridFromLayer(m, layer)
	if err != nil {
		return nil, fmt.Errorf("TMX %s: %w", tmxPath, err)
	}

	for _, og := range m.ObjectGroups {
		if og.Name != SpawnObjectGroup || len(og.Objects) == 0 {
			continue
		}
		g.SpawnX = int(og.Objects[0].X)
		g.SpawnY = int(og.Objects[0].Y)
		break
	}

	return g, nil
}

// gridFromLayer converts a fixed-size tile layer. Infinite maps store their
// tiles in chunks and are rejected by the size check.
func gridFromLayer(m *tiled.Map, layer *tiled.Layer) (*Grid, error) {
	if m.TileWidth <= 0 || m.TileWidth != m.TileHeight {
		return nil, fmt.Errorf("tiles must be square and non-empty, got %dx%d", m.TileWidth, m.TileHeight)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if len(layer.Tiles) < m.Width*m.Height {
		return nil, fmt.Errorf("layer %q has %d tiles, want %d", layer.Name, len(layer.Tiles), m.Width*m.Height)
	}

	g := NewGrid(m.Width, m.Height, m.TileWidth)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := layer.Tiles[y*m.Width+x]
			if tile.IsNil() {
				continue
			}

			kind := TileSolid
			if tile.Tileset != nil {
				if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tt.Properties.GetBool(oneWayProperty) {
					kind = TileOneWay
				}
			}
			g.Set(x, y, kind)
		}
	}
	return g, nil
}
