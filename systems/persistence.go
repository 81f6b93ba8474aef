package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Scores are
// deliberately not persisted.
type SavedSettings struct {
	EnableWind bool `json:"enableWind"`
	MaxThrows  int  `json:"maxThrows"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bintoss",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to disk
func SaveSettings(settings *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem("settings", data)
}

// ApplySavedSettingsGlobal applies loaded settings to the global config.
func ApplySavedSettingsGlobal(settings *SavedSettings) {
	if settings == nil {
		return
	}
	cfg.Wind.Enabled = settings.EnableWind
	if settings.MaxThrows > 0 {
		cfg.Session.MaxThrows = settings.MaxThrows
	}
}

// CurrentSettings captures the live config for saving.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		EnableWind: cfg.Wind.Enabled,
		MaxThrows:  cfg.Session.MaxThrows,
	}
}
