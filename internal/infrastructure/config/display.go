package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// DefaultDisplay is the 160x144 demo window
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		ScreenWidth:  160,
		ScreenHeight: 144,
		Scale:        2,
		Framerate:    60,
	}
}
