package components

import (
	"github.com/yohamta/donburi"
)

// HostAction is a key handled by the client itself rather than the
// controller.
type HostAction int

const (
	HostToggleOverlay HostAction = iota
	HostToggleInspector
	HostRespawn
	HostCycleLevel
	HostActionCount // Must be last - used for array sizing
)

// HostInputData stores the current and previous frame's pressed state for
// host actions.
type HostInputData struct {
	Current  [HostActionCount]bool
	Previous [HostActionCount]bool
}

var HostInput = donburi.NewComponentType[HostInputData]()

// JustPressed reports a press that started this frame.
func (in *HostInputData) JustPressed(a HostAction) bool {
	return in.Current[a] && !in.Previous[a]
}
