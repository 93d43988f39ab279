package prefs

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const itemKey = "prefs"

// Prefs are the demo settings kept between runs
type Prefs struct {
	DisableFlashing bool `json:"disableFlashing"`
	Muted           bool `json:"muted"`
	Scale           int  `json:"scale"` // window scale, 0 keeps the display config
}

// Store is the key/value backend. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Manager loads and saves Prefs
type Manager struct {
	store Store
}

// Open creates a manager backed by gdata storage for appName
func Open(appName string) (*Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open prefs storage: %w", err)
	}
	return NewManager(m), nil
}

// NewManager creates a manager over an existing store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Load returns the saved prefs, or zero prefs when nothing was saved yet
func (m *Manager) Load() (Prefs, error) {
	data, err := m.store.LoadItem(itemKey)
	if err != nil {
		return Prefs{}, fmt.Errorf("load prefs: %w", err)
	}
	if len(data) == 0 {
		return Prefs{}, nil
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parse prefs: %w", err)
	}
	return p, nil
}

// Save stores p
func (m *Manager) Save(p Prefs) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize prefs: %w", err)
	}
	if err := m.store.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// Update loads the prefs, applies fn and saves the result. Failures are
// logged and the in-memory result is still returned.
func (m *Manager) Update(fn func(*Prefs)) Prefs {
	p, err := m.Load()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	fn(&p)
	if err := m.Save(p); err != nil {
		log.Printf("Warning: %v", err)
	}
	return p
}
