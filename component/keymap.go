package component

import "github.com/kamstrup/intmap"

// Keymap translates raw platform key codes into Events. Key code values
// are a platform concern and differ between backends, so drivers bind
// whatever codes they receive; the core only cares about the resulting
// three-way classification. Codes with no binding translate to the zero
// Event, which classifies as invalid.
type Keymap struct {
	codes *intmap.Map[int64, Event]
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		codes: intmap.New[int64, Event](8),
	}
}

// Bind associates a platform key code with an event. Rebinding a code
// replaces the previous association.
func (k *Keymap) Bind(code int64, ev Event) {
	k.codes.Put(code, ev)
}

// Translate returns the event bound to code, or the zero Event when the
// code has no binding.
func (k *Keymap) Translate(code int64) Event {
	ev, ok := k.codes.Get(code)
	if !ok {
		return 0
	}
	return ev
}
