package replay

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/domain/entity"
	"github.com/younwookim/clst/internal/infrastructure/config"
)

func createTestRoom() system.Collider {
	return system.ColliderFunc(func(p system.Probe) bool {
		return p.Y >= 112 || p.X < 16 || p.X >= 144
	})
}

func spawnActor(x, y int) *entity.Actor {
	a := entity.NewActor()
	a.SetPosition(x, y)
	return a
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder("demo", 64, 104)
	require.True(t, rec.IsRecording())

	rec.RecordFrame(entity.KeyRight, 1.0/30)
	rec.RecordFrame(entity.KeyRight|entity.KeyJump, 1.0/60)

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "demo", data.Stage)
	assert.Equal(t, 64, data.SpawnX)
	assert.Equal(t, 104, data.SpawnY)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.Equal(t, entity.KeyRight|entity.KeyJump, data.Frames[1].Input())
	assert.InDelta(t, 1.0/60, data.Frames[1].DT, 1e-12)
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("demo", 0, 0)
	rec.RecordFrame(entity.KeyLeft, 1.0/30)
	rec.Stop()
	rec.RecordFrame(entity.KeyLeft, 1.0/30)

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_EmptySave(t *testing.T) {
	rec := NewRecorder("demo", 0, 0)

	var buf bytes.Buffer
	assert.ErrorIs(t, rec.Encode(&buf), ErrNoFrames)
	assert.ErrorIs(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")), ErrNoFrames)
}

func TestReplayer_Next(t *testing.T) {
	r := NewReplayer(Data{
		Version: Version,
		Frames: []FrameInput{
			{F: 0, K: uint8(entity.KeyLeft), DT: 1.0 / 30},
			{F: 1, K: uint8(entity.KeyJump), DT: 1.0 / 30},
		},
	})
	assert.Equal(t, 2, r.TotalFrames())

	f, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, entity.KeyLeft, f.Input())
	assert.Equal(t, 1, r.CurrentFrame())

	f, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, entity.KeyJump, f.Input())
	assert.True(t, r.Done())

	_, ok = r.Next()
	assert.False(t, ok)

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.False(t, r.Done())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("{"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"version":"0.1","frames":[]}`))
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	rec := NewRecorder("demo", 64, 104)
	rec.RecordFrame(entity.KeyDash|entity.KeyUp, 1.0/30)
	rec.RecordFrame(0, 1.0/144)

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().Frames, data.Frames)
	assert.Equal(t, "demo", data.Stage)
}

// A recording played through a fresh actor must reproduce the live run
// exactly, including variable step lengths.
func TestReplay_Deterministic(t *testing.T) {
	sys := system.NewPhysicsSystem(config.DefaultTuning())
	room := createTestRoom()

	var liveSounds, replaySounds []entity.SoundID
	live := spawnActor(64, 104)
	liveCaps := system.Capabilities{
		World: room,
		Audio: system.AudioFunc(func(id entity.SoundID) { liveSounds = append(liveSounds, id) }),
	}

	rng := rand.New(rand.NewSource(11))
	steps := []float64{1.0 / 30, 1.0 / 60, 1.0 / 144, 0.05}
	keys := []entity.Input{entity.KeyJump, entity.KeyDash, entity.KeyRight, entity.KeyDown, entity.KeyUp, entity.KeyLeft}

	rec := NewRecorder("room", 64, 104)
	for i := 0; i < 900; i++ {
		var in entity.Input
		for _, k := range keys {
			if rng.Intn(3) == 0 {
				in |= k
			}
		}
		dt := steps[rng.Intn(len(steps))]
		rec.RecordFrame(in, dt)
		sys.Tick(live, liveCaps, in, dt)
	}

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	data, err := Decode(&buf)
	require.NoError(t, err)

	replayed := spawnActor(data.SpawnX, data.SpawnY)
	replayCaps := system.Capabilities{
		World: room,
		Audio: system.AudioFunc(func(id entity.SoundID) { replaySounds = append(replaySounds, id) }),
	}
	n := NewReplayer(*data).Run(sys, replayed, replayCaps)

	assert.Equal(t, 900, n)
	assert.Equal(t, *live, *replayed)
	assert.Equal(t, liveSounds, replaySounds)
}
