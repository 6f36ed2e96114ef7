// Package settings persists user preferences across runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings is what survives a restart
type Settings struct {
	LastScene  string `yaml:"lastScene"`
	Fall       string `yaml:"fall,omitempty"`
	Horizontal string `yaml:"horizontal,omitempty"`
}

// Store is the subset of *gdata.Manager the manager uses
type Store interface {
	ObjectPropExists(object, property string) bool
	LoadObjectProp(object, property string) ([]byte, error)
	SaveObjectProp(object, property string, data []byte) error
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves Settings. A nil store runs in memory only.
type Manager struct {
	store    Store
	settings Settings
}

// Open creates a manager backed by the platform data directory for appName.
// If the directory cannot be opened the manager falls back to memory only.
func Open(appName string) *Manager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: persistent storage unavailable: %v", err)
		return NewManager(nil)
	}
	return NewManager(gm)
}

// NewManager creates a manager and loads any saved settings. A load failure
// is logged and defaults are used.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return m
}

// Load reads saved settings. Missing data is not an error.
func (m *Manager) Load() error {
	m.settings = Settings{}
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	m.settings = s
	log.Printf("[Settings] Loaded (last scene %q)", s.LastScene)
	return nil
}

// Save writes the current settings. Without a store it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings
func (m *Manager) Settings() Settings {
	return m.settings
}

// Persistent reports whether settings are written anywhere
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// SetLastScene records the active scene and saves
func (m *Manager) SetLastScene(name string) error {
	m.settings.LastScene = name
	return m.Save()
}

// SetMovement records a tetromino movement override and saves
func (m *Manager) SetMovement(fall, horizontal string) error {
	m.settings.Fall = fall
	m.settings.Horizontal = horizontal
	return m.Save()
}
