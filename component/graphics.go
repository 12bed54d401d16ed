package component

import "go.uber.org/zap"

// GraphicsComponent presents an entity after its state has settled for
// the frame. It is the last hook in the update sequence; drivers that
// want pixels (see cmd/component-game) draw from entity state after the
// update returns.
type GraphicsComponent interface {
	Update(e *Entity)
}

// ConsoleGraphics is the generic graphics variant: it reports the
// post-update state to the log sink and draws nothing.
type ConsoleGraphics struct {
	log *zap.Logger
}

// NewConsoleGraphics creates the logging graphics component. A nil log
// silences it.
func NewConsoleGraphics(log *zap.Logger) *ConsoleGraphics {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConsoleGraphics{log: log}
}

func (g *ConsoleGraphics) Update(e *Entity) {
	g.log.Debug("rendered",
		zap.String("entity", e.Name),
		zap.Int("position", e.Position),
		zap.Int("velocity", e.Velocity))
}
