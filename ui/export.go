package ui

import (
	"fmt"
	"sync"

	"github.com/automoto/platformer-controller/shared/controller"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// ExportTuning copies t to the system clipboard as YAML.
func ExportTuning(t controller.TuningData) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}

	data, err := controller.EncodeTuning(t)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
