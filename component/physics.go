package component

// PhysicsComponent advances an entity's simulated motion once per frame.
// It runs after input has settled velocity and never fails.
type PhysicsComponent interface {
	Update(e *Entity)
}

// MovementPhysics is the generic physics variant shared by every entity
// kind: position advances by the current velocity each frame.
type MovementPhysics struct{}

func (MovementPhysics) Update(e *Entity) {
	e.Position += e.Velocity
}
