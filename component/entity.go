package component

import "go.uber.org/zap"

// Entity is the composed game object. It owns exactly one component per
// capability and exposes its simulated state as plain mutable fields that
// the components read and write during an update. Component slots are
// fixed for the entity's lifetime.
type Entity struct {
	Name     string // set at construction, never reassigned
	Velocity int
	Position int

	input    InputComponent
	physics  PhysicsComponent
	graphics GraphicsComponent
}

// New composes an entity from one component per capability. Every slot
// must be populated; a nil slot is programmer error and panics.
func New(name string, in InputComponent, ph PhysicsComponent, gr GraphicsComponent) *Entity {
	if in == nil || ph == nil || gr == nil {
		panic("entity " + name + " composed with a nil component slot")
	}
	return &Entity{
		Name:     name,
		input:    in,
		physics:  ph,
		graphics: gr,
	}
}

// NewPlayer composes a human-controlled entity: player input plus the
// generic physics and graphics components. A nil logger silences the
// components' status output.
func NewPlayer(name string, log *zap.Logger) *Entity {
	return New(name, NewPlayerInput(log), MovementPhysics{}, NewConsoleGraphics(log))
}

// NewNPC composes an autonomous entity: demo input plus the same generic
// physics and graphics components the player variant uses.
func NewNPC(name string, log *zap.Logger) *Entity {
	return New(name, NewDemoInput(log), MovementPhysics{}, NewConsoleGraphics(log))
}

// Update drives one event-based frame. Components run strictly in input,
// physics, graphics order, each to completion before the next; the entity
// passes itself to each so they can read and mutate its state.
func (e *Entity) Update(ev Event) {
	e.input.Update(e, ev)
	e.physics.Update(e)
	e.graphics.Update(e)
}

// UpdateAutonomous drives one frame without an external event, the path
// used for demo mode and non-player entities. Component order is the same
// as Update.
func (e *Entity) UpdateAutonomous() {
	e.input.Tick(e)
	e.physics.Update(e)
	e.graphics.Update(e)
}
