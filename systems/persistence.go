package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/quasilyte/gdata"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "platformer-controller",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSavedTuning loads the tuning last saved from the inspector. It returns
// nil when nothing usable is stored.
func LoadSavedTuning() (*controller.TuningData, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Inspector.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if data == nil {
		// Nothing saved yet, use the preset
		return nil, nil
	}

	t := controller.DefaultTuning()
	if err := json.Unmarshal(data, &t); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	if err := t.Validate(); err != nil {
		log.Printf("Warning: Saved tuning is invalid: %v", err)
		return nil, err
	}

	return &t, nil
}

// SaveTuning saves t for the next start
func SaveTuning(t controller.TuningData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Inspector.SaveKey, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}
