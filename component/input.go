package component

import "go.uber.org/zap"

// Walk steps for the two input variants. The demo step is larger so an
// unattended entity visibly outruns a keyed one.
const (
	PlayerWalkStep = 1
	DemoWalkStep   = 2
)

// InputComponent turns external signals into velocity changes. Both entry
// points are part of the contract; a variant with no use for one of them
// implements it as a no-op rather than dropping it.
type InputComponent interface {
	// Update applies one event-driven input to the entity.
	Update(e *Entity, ev Event)
	// Tick applies one frame of autonomous input.
	Tick(e *Entity)
}

// PlayerInput is the human-controlled input variant. It classifies each
// event three ways: the movement sentinels adjust velocity by
// PlayerWalkStep, and anything else zeroes velocity and position. The
// reset is recovery policy for out-of-band input, not an error path.
type PlayerInput struct {
	log *zap.Logger
}

// NewPlayerInput creates the player input component. Status lines go to
// log; nil means no output.
func NewPlayerInput(log *zap.Logger) *PlayerInput {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlayerInput{log: log}
}

func (p *PlayerInput) Update(e *Entity, ev Event) {
	switch ev {
	case MoveLeft:
		e.Velocity -= PlayerWalkStep
		p.log.Info("moved left",
			zap.String("entity", e.Name),
			zap.Int("velocity", e.Velocity))
	case MoveRight:
		e.Velocity += PlayerWalkStep
		p.log.Info("moved right",
			zap.String("entity", e.Name),
			zap.Int("velocity", e.Velocity))
	default:
		e.Velocity = 0
		e.Position = 0
		p.log.Info("reset on unrecognized input",
			zap.String("entity", e.Name),
			zap.Int("event", int(ev)))
	}
}

// Tick is a no-op: a keyed entity does not move on its own.
func (p *PlayerInput) Tick(e *Entity) {}

// DemoInput is the autonomous input variant: it walks the entity right at
// a constant rate with no external input, the mode a game drops into when
// the player goes idle.
type DemoInput struct {
	log *zap.Logger
}

// NewDemoInput creates the autonomous input component. Status lines go to
// log; nil means no output.
func NewDemoInput(log *zap.Logger) *DemoInput {
	if log == nil {
		log = zap.NewNop()
	}
	return &DemoInput{log: log}
}

// Tick unconditionally accelerates the entity by DemoWalkStep.
func (d *DemoInput) Tick(e *Entity) {
	e.Velocity += DemoWalkStep
	d.log.Info("moved right",
		zap.String("entity", e.Name),
		zap.Int("velocity", e.Velocity))
}

// Update ignores the event and behaves exactly like Tick; demo mode has
// no event-driven behavior of its own.
func (d *DemoInput) Update(e *Entity, ev Event) {
	d.Tick(e)
}
