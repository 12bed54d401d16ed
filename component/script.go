package component

// ScriptSource replays a canned, frame-indexed event script. It backs
// scene files and tests that need deterministic input without a real
// input device. At most one event per entity per frame; frames without a
// cue fall through to the autonomous path.
type ScriptSource struct {
	cues map[int64]map[string]Event
}

// NewScriptSource creates an empty script.
func NewScriptSource() *ScriptSource {
	return &ScriptSource{
		cues: make(map[int64]map[string]Event),
	}
}

// At schedules ev for entity on the given zero-based frame. Scheduling a
// second cue for the same frame and entity replaces the first.
func (s *ScriptSource) At(frame int64, entity string, ev Event) {
	byEntity, ok := s.cues[frame]
	if !ok {
		byEntity = make(map[string]Event)
		s.cues[frame] = byEntity
	}
	byEntity[entity] = ev
}

// Poll implements EventSource.
func (s *ScriptSource) Poll(frame int64, entity string) (Event, bool) {
	ev, ok := s.cues[frame][entity]
	return ev, ok
}
