package system

import "github.com/younwookim/clst/internal/domain/entity"

// AudioSink receives fire-and-forget sound events in the order they occur
// within a tick
type AudioSink interface {
	Play(id entity.SoundID)
}

// AudioFunc adapts a function to AudioSink
type AudioFunc func(id entity.SoundID)

// Play calls f(id)
func (f AudioFunc) Play(id entity.SoundID) {
	f(id)
}
