package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/clst/internal/application/game"
	"github.com/younwookim/clst/internal/application/replay"
	"github.com/younwookim/clst/internal/application/scene/playing"
	"github.com/younwookim/clst/internal/application/state"
	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/infrastructure/config"
	"github.com/younwookim/clst/internal/infrastructure/level"
	"github.com/younwookim/clst/internal/infrastructure/prefs"
	"github.com/younwookim/clst/internal/infrastructure/sound"
)

const appName = "clst-demo"

// options are the parsed command line flags
type options struct {
	configDir string
	tuning    string
	stage     string
	tmx       string
	collider  string
	record    string
	replay    string
	mute      bool
	variable  bool
	headless  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fset := flag.NewFlagSet("demo", flag.ContinueOnError)
	fset.StringVar(&o.configDir, "config", "", "Config directory (default: built-in configs)")
	fset.StringVar(&o.tuning, "tuning", "tuning.json", "Tuning file inside the config directory (.json or .yaml)")
	fset.StringVar(&o.stage, "stage", "demo", "Stage name under stages/")
	fset.StringVar(&o.tmx, "tmx", "", "Tiled map for collision instead of the stage's ASCII layer (e.g. levels/demo.tmx)")
	fset.StringVar(&o.collider, "collider", "grid", "Collision backend: grid or space")
	fset.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&o.replay, "replay", "", "Play back a recording instead of reading the keyboard")
	fset.BoolVar(&o.mute, "mute", false, "Start with sound off")
	fset.BoolVar(&o.variable, "variable", false, "Step by measured frame time instead of 1/TPS")
	fset.BoolVar(&o.headless, "headless", false, "With -replay: run the recording without a window and print the result")
	if err := fset.Parse(args); err != nil {
		return o, err
	}
	if o.collider != "grid" && o.collider != "space" {
		return o, fmt.Errorf("unknown collider %q (want grid or space)", o.collider)
	}
	if o.headless && o.replay == "" {
		return o, errors.New("-headless needs -replay")
	}
	return o, nil
}

// configSource returns the filesystem configs are read from
func configSource(o options) (fs.FS, error) {
	if o.configDir != "" {
		return os.DirFS(o.configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return fsys, nil
}

// stageWorld is the collision side of a loaded stage
type stageWorld struct {
	cfg    *config.StageConfig
	grid   *level.Grid
	static system.Collider
	movers []*level.Mover
}

func loadWorld(fsys fs.FS, loader *config.Loader, o options) (*stageWorld, error) {
	stageCfg, err := loader.LoadStage(o.stage)
	if err != nil {
		return nil, err
	}

	var grid *level.Grid
	if o.tmx != "" {
		grid, err = level.LoadTMX(fsys, o.tmx, "")
	} else {
		grid, err = level.FromStage(stageCfg)
	}
	if err != nil {
		return nil, err
	}

	w := &stageWorld{
		cfg:    stageCfg,
		grid:   grid,
		static: grid,
		movers: level.MoversFromStage(stageCfg),
	}
	if o.collider == "space" {
		space := level.SpaceFromGrid(grid)
		log.Printf("Collision space: %d shapes", space.Len())
		w.static = space
	}
	return w, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	fsys, err := configSource(o)
	if err != nil {
		log.Fatal(err)
	}
	loader := config.NewFSLoader(fsys, o.configDir)

	display, err := loader.LoadDisplay()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	tuning, err := loader.LoadTuning(o.tuning)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	world, err := loadWorld(fsys, loader, o)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	opts := playing.Options{
		Display:    display,
		Tuning:     tuning,
		Stage:      world.cfg.ID,
		Grid:       world.grid,
		Static:     world.static,
		Movers:     world.movers,
		Keys:       system.DefaultKeyBindings(),
		RecordPath: o.record,
	}

	if o.replay != "" {
		data, err := replay.Load(o.replay)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != world.cfg.ID {
			log.Printf("Warning: replay was recorded on stage %q, playing on %q", data.Stage, world.cfg.ID)
		}
		opts.Replay = data
		opts.RecordPath = ""
	}

	if o.headless {
		if err := runHeadless(opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	synth := sound.NewSynth(sound.DefaultSampleRate)
	if err := synth.Init(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	} else {
		opts.Audio = synth
		defer synth.Close()
	}

	if store, err := prefs.Open(appName); err != nil {
		log.Printf("Warning: prefs disabled: %v", err)
	} else {
		opts.Prefs = store
	}

	// Hot reload only makes sense for files on disk
	if o.configDir != "" {
		watcher, err := config.NewWatcher(filepath.Join(o.configDir, o.tuning))
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			go func() {
				for err := range watcher.Errors {
					log.Printf("Watcher error: %v", err)
				}
			}()
			opts.Changes = watcher.Events
			opts.Reload = func() (*config.Tuning, error) {
				return config.NewLoader(o.configDir).LoadTuning(o.tuning)
			}
			log.Printf("Watching %s for changes", filepath.Join(o.configDir, o.tuning))
		}
	}

	opts.Resize = ebiten.SetWindowSize

	sc, err := playing.New(opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	if o.mute {
		synth.SetMuted(true)
	}

	g := game.New(sc, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))
	if o.variable {
		g.SetClock(time.Now)
	}

	ebiten.SetWindowSize(display.ScreenWidth*sc.Scale(), display.ScreenHeight*sc.Scale())
	ebiten.SetWindowTitle("clst demo")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	sc.OnExit()
}

// runHeadless plays a recording to the end and prints where the actor stopped
func runHeadless(opts playing.Options) error {
	sc, err := playing.New(opts)
	if err != nil {
		return err
	}
	n := 0
	for sc.State() == state.StateReplaying {
		if _, err := sc.Update(0); err != nil {
			return err
		}
		n++
	}
	a := sc.Actor()
	fmt.Printf("frames=%d x=%d y=%d speed=(%.3f,%.3f) dash=%d sprite=%d\n",
		n-1, a.X, a.Y, a.Speed.X, a.Speed.Y, a.DashCharges, a.Sprite)
	return nil
}
