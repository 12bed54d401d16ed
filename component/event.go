package component

import "fmt"

// Event is an external input signal, already decoded from whatever the
// platform delivers (key codes, gamepad buttons, script cues). The core
// only distinguishes the two movement sentinels; every other value
// classifies as invalid and triggers the player input's reset policy.
type Event int

const (
	MoveLeft Event = iota + 1
	MoveRight
)

func (ev Event) String() string {
	switch ev {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	default:
		return "invalid"
	}
}

// ParseEvent maps a scene-script event name to its Event. Unknown names
// are a configuration error, not the runtime reset path.
func ParseEvent(name string) (Event, error) {
	switch name {
	case "move-left", "left":
		return MoveLeft, nil
	case "move-right", "right":
		return MoveRight, nil
	default:
		return 0, fmt.Errorf("unknown event name %q", name)
	}
}
