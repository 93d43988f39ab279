package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// DemoConfig holds all configurations loaded for the demo host
type DemoConfig struct {
	Display *DisplayConfig
	Tuning  *Tuning
	Stage   *StageConfig
}

// Loader loads configuration files using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// decode picks the decoder from the file extension
func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	switch ext := path.Ext(name); ext {
	case ".json":
		err = json.Unmarshal(data, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported config format %q for %s", ext, name)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadTuning loads a tuning file (JSON or YAML). Values absent from the file
// keep their defaults.
func (l *Loader) LoadTuning(name string) (*Tuning, error) {
	cfg := DefaultTuning()
	if err := l.decode(name, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if err := l.decode("display.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.decode("stages/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads display, tuning and the named stage
func (l *Loader) LoadAll(tuningFile, stage string) (*DemoConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	tuning, err := l.LoadTuning(tuningFile)
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &DemoConfig{
		Display: display,
		Tuning:  tuning,
		Stage:   stageCfg,
	}, nil
}
