// Package playing provides the demo scene: one actor in a stage, driven by
// the keyboard or a recording.
package playing

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/clst"
	"github.com/younwookim/clst/internal/application/replay"
	"github.com/younwookim/clst/internal/application/scene"
	"github.com/younwookim/clst/internal/application/state"
	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/infrastructure/config"
	"github.com/younwookim/clst/internal/infrastructure/level"
	"github.com/younwookim/clst/internal/infrastructure/prefs"
)

// Options wires a Playing scene
type Options struct {
	Display *config.DisplayConfig
	Tuning  *config.Tuning
	Stage   string
	Grid    *level.Grid
	Static  system.Collider // static solids; the grid when nil
	Movers  []*level.Mover
	Audio   system.AudioSink
	Prefs   *prefs.Manager
	Keys    system.KeyBindings

	RecordPath string
	Replay     *replay.Data

	// Changes signals that the tuning file was edited; Reload reads it
	Changes <-chan string
	Reload  func() (*config.Tuning, error)

	// Resize applies a new window size after a scale change
	Resize func(w, h int)
}

// Window scale limits for the +/- keys
const (
	minScale = 1
	maxScale = 8
)

// muter is implemented by sinks that can be silenced
type muter interface {
	SetMuted(bool)
}

// Playing is the demo scene
type Playing struct {
	engine *clst.Engine
	handle clst.Handle

	grid    *level.Grid
	static  system.Collider
	movers  []*level.Mover
	world   level.Union
	audio   system.AudioSink
	input   *system.InputSystem
	state   state.GameState
	screenW int
	screenH int

	baseScale int
	resize    func(w, h int)

	prefs    *prefs.Manager
	settings prefs.Prefs

	lastInput  clst.Input
	showHitbox bool
	ticks      int

	// Input recording
	stage          string
	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer

	changes <-chan string
	reload  func() (*config.Tuning, error)
}

// New creates a new Playing scene. A non-empty RecordPath records every
// tick; a non-nil Replay plays a recording instead of reading the keyboard.
func New(opts Options) (*Playing, error) {
	if opts.Grid == nil {
		return nil, errors.New("playing: stage grid is required")
	}
	engine, err := clst.New(opts.Tuning)
	if err != nil {
		return nil, err
	}

	display := opts.Display
	if display == nil {
		display = config.DefaultDisplay()
	}

	static := opts.Static
	if static == nil {
		static = opts.Grid
	}
	world := level.Union{static}
	for _, m := range opts.Movers {
		world = append(world, m)
	}

	p := &Playing{
		engine:         engine,
		grid:           opts.Grid,
		static:         static,
		movers:         opts.Movers,
		world:          world,
		audio:          opts.Audio,
		input:          system.NewInputSystem(opts.Keys),
		state:          state.StatePlaying,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		baseScale:      display.Scale,
		resize:         opts.Resize,
		prefs:          opts.Prefs,
		stage:          opts.Stage,
		recordFilename: opts.RecordPath,
		changes:        opts.Changes,
		reload:         opts.Reload,
	}

	if p.prefs != nil {
		if s, err := p.prefs.Load(); err != nil {
			log.Printf("Failed to load prefs: %v", err)
		} else {
			p.settings = s
		}
	}
	p.applyMute()

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
		log.Printf("Replaying %d frames (stage: %s)", p.replayer.TotalFrames(), opts.Replay.Stage)
	}

	p.spawn()
	return p, nil
}

// spawnPoint returns where the actor starts. Replays use the recorded point.
func (p *Playing) spawnPoint() (int, int) {
	if p.replayer != nil {
		d := p.replayer.Data()
		return d.SpawnX, d.SpawnY
	}
	return p.grid.SpawnX, p.grid.SpawnY
}

// spawn creates a fresh actor and resets every time-dependent part of the stage
func (p *Playing) spawn() {
	if p.handle != 0 {
		p.engine.Release(p.handle)
	}
	p.handle = p.engine.Init()
	p.engine.SetCollider(p.handle, p.world)
	p.engine.SetAudio(p.handle, p.audio)

	x, y := p.spawnPoint()
	p.engine.Actor(p.handle).SetPosition(x, y)

	for _, m := range p.movers {
		m.Reset()
	}
	p.ticks = 0
	p.lastInput = 0

	if p.replayer != nil {
		p.replayer.Reset()
		p.state = state.StateReplaying
		return
	}
	p.state = state.StatePlaying
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.stage, x, y)
		log.Printf("Recording enabled: %s", p.recordFilename)
	}
}

// Update proceeds the scene (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollReload()
	p.handleKeys()

	switch p.state {
	case state.StatePlaying:
		in := p.input.Poll()
		if p.recorder != nil {
			p.recorder.RecordFrame(in, dt)
		}
		p.advance(in, dt)
	case state.StateReplaying:
		f, ok := p.replayer.Next()
		if !ok {
			p.state = state.StateReplayDone
			log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
			return nil, nil
		}
		p.advance(f.Input(), f.DT)
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		p.toggleFlashing()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		p.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		p.showHitbox = !p.showHitbox
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		p.adjustScale(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		p.adjustScale(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
	}
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
}

// advance moves platforms, carries a riding actor and ticks the engine
func (p *Playing) advance(in clst.Input, dt float64) {
	p.carry(dt)
	p.engine.Tick(p.handle, in, dt)
	p.lastInput = in
	p.ticks++
}

// carry moves every platform and drags the actor along with any platform it
// was standing on, one pixel at a time so static walls still stop it
func (p *Playing) carry(dt float64) {
	a := p.engine.Actor(p.handle)
	body := system.Snapshot(a)
	for _, m := range p.movers {
		riding := m.Supports(body)
		dx, dy := m.Update(dt)
		if !riding {
			continue
		}
		for ; dx != 0; dx -= sign(dx) {
			if system.CollidesAt(a, p.static, sign(dx), 0) {
				break
			}
			a.X += sign(dx)
		}
		for ; dy != 0; dy -= sign(dy) {
			if system.CollidesAt(a, p.static, 0, sign(dy)) {
				break
			}
			a.Y += sign(dy)
		}
	}
}

func (p *Playing) togglePause() {
	p.state = p.state.TogglePause(p.replayer != nil)
}

func (p *Playing) toggleFlashing() {
	flip := func(s *prefs.Prefs) { s.DisableFlashing = !s.DisableFlashing }
	if p.prefs != nil {
		p.settings = p.prefs.Update(flip)
		return
	}
	flip(&p.settings)
}

func (p *Playing) toggleMute() {
	flip := func(s *prefs.Prefs) { s.Muted = !s.Muted }
	if p.prefs != nil {
		p.settings = p.prefs.Update(flip)
	} else {
		flip(&p.settings)
	}
	p.applyMute()
}

// Scale returns the window scale: the saved preference, or the display
// config's when none was saved
func (p *Playing) Scale() int {
	if p.settings.Scale > 0 {
		return p.settings.Scale
	}
	return p.baseScale
}

func (p *Playing) adjustScale(delta int) {
	scale := clamp(p.Scale()+delta, minScale, maxScale)
	set := func(s *prefs.Prefs) { s.Scale = scale }
	if p.prefs != nil {
		p.settings = p.prefs.Update(set)
	} else {
		set(&p.settings)
	}
	if p.resize != nil {
		p.resize(p.screenW*scale, p.screenH*scale)
	}
}

func (p *Playing) applyMute() {
	if m, ok := p.audio.(muter); ok {
		m.SetMuted(p.settings.Muted)
	}
}

// pollReload applies an edited tuning file without blocking the frame
func (p *Playing) pollReload() {
	if p.changes == nil || p.reload == nil {
		return
	}
	select {
	case name, ok := <-p.changes:
		if !ok {
			p.changes = nil
			return
		}
		t, err := p.reload()
		if err != nil {
			log.Printf("Tuning reload failed (%s): %v", name, err)
			return
		}
		if err := p.engine.SetTuning(t); err != nil {
			log.Printf("Tuning rejected (%s): %v", name, err)
			return
		}
		log.Printf("Tuning reloaded: %s", name)
	default:
	}
}

func (p *Playing) restart() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}
	p.spawn()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Stage %s: spawn at (%d, %d)", p.stage, p.engine.Actor(p.handle).X, p.engine.Actor(p.handle).Y)
}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Actor returns the live actor
func (p *Playing) Actor() *clst.Actor {
	return p.engine.Actor(p.handle)
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Settings returns the active preferences
func (p *Playing) Settings() prefs.Prefs {
	return p.settings
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
