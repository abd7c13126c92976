package controller

import "github.com/yohamta/donburi"

// ActionID is a logical controller action.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{"move_left", "move_right", "jump"}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a name such as "jump" back to its ActionID.
func ParseAction(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), true
		}
	}
	return 0, false
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all
// actions. Hosts call Push once per tick before Step.
type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Push shifts the current buffer into the previous one and stores pressed.
func (in *InputData) Push(pressed [ActionCount]bool) {
	in.Previous = in.Current
	in.Current = pressed
}

// Action derives JustPressed/JustReleased from the two buffers.
func (in *InputData) Action(id ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// AxisX returns -1, 0 or 1. Holding both directions cancels out.
func (in *InputData) AxisX() float64 {
	left := in.Current[ActionMoveLeft]
	right := in.Current[ActionMoveRight]
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}
