package replay

import "github.com/younwookim/clst/internal/domain/entity"

// Version is written into every recording
const Version = "1.0"

// FrameInput records the key bits and step length of a single tick
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	K  uint8   `json:"k,omitempty"` // Input bits
	DT float64 `json:"dt"`          // Seconds
}

// Input returns the recorded key bits
func (f FrameInput) Input() entity.Input {
	return entity.Input(f.K)
}

// Data contains everything needed to replay a session against the same stage
type Data struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	SpawnX    int          `json:"spawnX"`
	SpawnY    int          `json:"spawnY"`
	Frames    []FrameInput `json:"frames"`
}
