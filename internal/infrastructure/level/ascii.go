package level

import (
	"fmt"

	"github.com/younwookim/clst/internal/infrastructure/config"
)

// ParseASCII builds a grid from text rows, one character per tile. Characters
// missing from mapping are empty; rows shorter than width are padded with
// empty tiles and longer rows are cut.
func ParseASCII(rows []string, mapping map[string]config.TileMappingConfig, width, tileSize int) (*Grid, error) {
	if width <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d tiles of %dpx", width, len(rows), tileSize)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("stage has no collision rows")
	}

	g := NewGrid(width, len(rows), tileSize)
	for y, row := range rows {
		for x, char := range []rune(row) {
			if x >= width {
				break
			}
			m, ok := mapping[string(char)]
			if !ok || !m.Solid {
				continue
			}
			if m.OneWay {
				g.Set(x, y, TileOneWay)
			} else {
				g.Set(x, y, TileSolid)
			}
		}
	}
	return g, nil
}

// FromStage converts a stage config into a grid with its spawn point
func FromStage(cfg *config.StageConfig) (*Grid, error) {
	g, err := ParseASCII(cfg.Layers.Collision, cfg.TileMapping, cfg.Size.Width, cfg.Size.TileSize)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", cfg.ID, err)
	}
	g.SpawnX = cfg.PlayerSpawn.X
	g.SpawnY = cfg.PlayerSpawn.Y
	return g, nil
}

// MoversFromStage creates the stage's moving platforms
func MoversFromStage(cfg *config.StageConfig) []*Mover {
	movers := make([]*Mover, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		movers = append(movers, NewMover(Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}, p.DX, p.DY, p.Duration))
	}
	return movers
}
