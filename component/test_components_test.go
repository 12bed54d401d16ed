package component_test

import "github.com/plus3/gameobject/component"

// Instrumented capability components shared by the tests. They record the
// order of capability calls on a shared trace so update sequencing can be
// asserted, and snapshot the entity state they observed at call time.
type callTrace struct {
	calls []string
}

func (t *callTrace) note(call string) {
	t.calls = append(t.calls, call)
}

type recordingInput struct {
	trace *callTrace
	step  int

	lastEvent component.Event
}

func (r *recordingInput) Update(e *component.Entity, ev component.Event) {
	r.trace.note("input")
	r.lastEvent = ev
	e.Velocity += r.step
}

func (r *recordingInput) Tick(e *component.Entity) {
	r.trace.note("input")
	e.Velocity += r.step
}

type recordingPhysics struct {
	trace *callTrace

	seenVelocity int
}

func (r *recordingPhysics) Update(e *component.Entity) {
	r.trace.note("physics")
	r.seenVelocity = e.Velocity
}

type recordingGraphics struct {
	trace *callTrace

	seenPosition int
}

func (r *recordingGraphics) Update(e *component.Entity) {
	r.trace.note("graphics")
	r.seenPosition = e.Position
}

func newRecordingEntity(name string, step int) (*component.Entity, *callTrace, *recordingInput, *recordingPhysics, *recordingGraphics) {
	trace := &callTrace{}
	in := &recordingInput{trace: trace, step: step}
	ph := &recordingPhysics{trace: trace}
	gr := &recordingGraphics{trace: trace}
	return component.New(name, in, ph, gr), trace, in, ph, gr
}
