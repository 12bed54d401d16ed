package component

import (
	"context"
	"time"
)

// RunnerStats provides statistics about frame execution.
type RunnerStats struct {
	EntityCount int
	TotalFrames int64
	Entities    []EntityStats
}

// EntityStats provides per-entity update statistics.
type EntityStats struct {
	Name          string
	FrameCount    int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type entityStatsInternal struct {
	name          string
	frameCount    int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// EventSource feeds per-frame events to a Runner. Poll is asked once per
// entity per frame; returning false routes that entity through the
// autonomous path for the frame.
type EventSource interface {
	Poll(frame int64, entity string) (Event, bool)
}

// Runner drives a set of entities one synchronous frame at a time. Each
// entity's update is independent; no state is shared between entities and
// order between them carries no meaning.
type Runner struct {
	entities []*Entity
	source   EventSource
	stats    []*entityStatsInternal
	frame    int64
}

// NewRunner creates a runner fed by source. A nil source runs every
// entity autonomously.
func NewRunner(source EventSource) *Runner {
	return &Runner{
		entities: make([]*Entity, 0),
		source:   source,
	}
}

// Attach adds an entity to the frame loop.
func (r *Runner) Attach(e *Entity) {
	r.entities = append(r.entities, e)
	r.stats = append(r.stats, &entityStatsInternal{
		name:        e.Name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs a single frame: each attached entity gets exactly one update,
// event-driven when the source has an event for it, autonomous otherwise.
func (r *Runner) Once() {
	for i, e := range r.entities {
		start := time.Now()
		ev, ok := r.poll(e.Name)
		if ok {
			e.Update(ev)
		} else {
			e.UpdateAutonomous()
		}
		duration := time.Since(start)

		stats := r.stats[i]
		stats.frameCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	r.frame++
}

func (r *Runner) poll(entity string) (Event, bool) {
	if r.source == nil {
		return 0, false
	}
	return r.source.Poll(r.frame, entity)
}

// Run executes frames repeatedly at the given interval until the context
// is cancelled.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Once()
		}
	}
}

// Frame returns the number of frames executed so far.
func (r *Runner) Frame() int64 {
	return r.frame
}

// GetStats returns statistics about frame execution.
func (r *Runner) GetStats() *RunnerStats {
	stats := &RunnerStats{
		EntityCount: len(r.entities),
		Entities:    make([]EntityStats, len(r.stats)),
	}

	var totalFrames int64
	for i, internal := range r.stats {
		avgDuration := time.Duration(0)
		if internal.frameCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.frameCount)
		}

		stats.Entities[i] = EntityStats{
			Name:          internal.name,
			FrameCount:    internal.frameCount,
			MinDuration:   internal.minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		totalFrames += internal.frameCount
	}

	stats.TotalFrames = totalFrames
	return stats
}
