package component

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Entity kinds recognized in scene files.
const (
	KindPlayer = "player"
	KindNPC    = "npc"
)

// Scene is a YAML-decodable description of a demo run: which entities to
// compose, how many frames to simulate, and an optional event script.
type Scene struct {
	Entities []SceneEntity `yaml:"entities"`
	Frames   int           `yaml:"frames,omitempty"`
	Script   []SceneCue    `yaml:"script,omitempty"`
}

// SceneEntity names one entity and the factory kind that composes it.
type SceneEntity struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// SceneCue schedules one named event for an entity on a zero-based frame.
type SceneCue struct {
	Frame  int64  `yaml:"frame"`
	Entity string `yaml:"entity"`
	Event  string `yaml:"event"`
}

// LoadScene decodes a YAML scene description.
func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return &s, nil
}

// Build composes the scene's entities and event script. Every entity kind
// and script event name must be recognized; configuration is the one
// surface where bad input is an error rather than reset policy.
func (s *Scene) Build(log *zap.Logger) ([]*Entity, *ScriptSource, error) {
	entities := make([]*Entity, 0, len(s.Entities))
	for _, se := range s.Entities {
		switch se.Kind {
		case KindPlayer:
			entities = append(entities, NewPlayer(se.Name, log))
		case KindNPC:
			entities = append(entities, NewNPC(se.Name, log))
		default:
			return nil, nil, fmt.Errorf("entity %q: unknown kind %q", se.Name, se.Kind)
		}
	}

	script := NewScriptSource()
	for _, cue := range s.Script {
		ev, err := ParseEvent(cue.Event)
		if err != nil {
			return nil, nil, fmt.Errorf("script cue for %q at frame %d: %w", cue.Entity, cue.Frame, err)
		}
		script.At(cue.Frame, cue.Entity, ev)
	}

	return entities, script, nil
}
