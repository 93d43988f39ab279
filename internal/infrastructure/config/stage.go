package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Platforms   []MovingPlatformConfig       `json:"platforms"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type   string `json:"type"`
	Solid  bool   `json:"solid"`
	OneWay bool   `json:"oneWay,omitempty"` // solid only from above
}

// MovingPlatformConfig describes a solid rectangle tweened back and forth
type MovingPlatformConfig struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	W        int     `json:"w"`
	H        int     `json:"h"`
	DX       int     `json:"dx"`       // travel in pixels
	DY       int     `json:"dy"`       // travel in pixels
	Duration float64 `json:"duration"` // seconds per leg
}
