package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Decode reads a recording written by Recorder.Encode
func Decode(r io.Reader) (*Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// Load loads replay data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the next frame and advances. ok is false once the recording
// is exhausted.
func (r *Replayer) Next() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}
	f := r.data.Frames[r.frame]
	r.frame++
	return f, true
}

// Done reports whether every frame has been returned
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the recording being played
func (r *Replayer) Data() Data {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds the remaining frames to the physics system without rendering and
// returns how many ticks were applied
func (r *Replayer) Run(sys *system.PhysicsSystem, a *entity.Actor, caps system.Capabilities) int {
	n := 0
	for f, ok := r.Next(); ok; f, ok = r.Next() {
		sys.Tick(a, caps, f.Input(), f.DT)
		n++
	}
	return n
}
