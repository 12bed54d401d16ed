package component_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/gameobject/component"
	"github.com/stretchr/testify/assert"
)

func TestRunnerRoutesScriptedEvents(t *testing.T) {
	script := component.NewScriptSource()
	script.At(0, "hero", component.MoveRight)
	script.At(2, "hero", component.MoveLeft)

	runner := component.NewRunner(script)
	hero := component.NewPlayer("hero", nil)
	drone := component.NewNPC("drone", nil)
	runner.Attach(hero)
	runner.Attach(drone)

	runner.Once() // frame 0: hero keyed right, drone autonomous
	assert.Equal(t, 1, hero.Velocity)
	assert.Equal(t, 2, drone.Velocity)

	runner.Once() // frame 1: no cue, both autonomous
	assert.Equal(t, 1, hero.Velocity)
	assert.Equal(t, 4, drone.Velocity)

	runner.Once() // frame 2: hero keyed left
	assert.Equal(t, 0, hero.Velocity)
	assert.Equal(t, 6, drone.Velocity)

	assert.Equal(t, int64(3), runner.Frame())
}

func TestRunnerNilSourceRunsAutonomous(t *testing.T) {
	runner := component.NewRunner(nil)
	hero := component.NewPlayer("hero", nil)
	drone := component.NewNPC("drone", nil)
	runner.Attach(hero)
	runner.Attach(drone)

	runner.Once()
	runner.Once()

	// The player's autonomous tick is a no-op; the NPC keeps walking.
	assert.Equal(t, 0, hero.Velocity)
	assert.Equal(t, 4, drone.Velocity)
}

func TestRunnerEntitiesAreIndependent(t *testing.T) {
	runner := component.NewRunner(nil)
	a := component.NewNPC("a", nil)
	b := component.NewNPC("b", nil)
	runner.Attach(a)
	runner.Attach(b)

	runner.Once()
	a.Velocity = 100
	runner.Once()

	assert.Equal(t, 102, a.Velocity)
	assert.Equal(t, 4, b.Velocity)
}

func TestRunnerStats(t *testing.T) {
	runner := component.NewRunner(nil)
	runner.Attach(component.NewNPC("a", nil))
	runner.Attach(component.NewNPC("b", nil))

	runner.Once()
	runner.Once()
	runner.Once()

	stats := runner.GetStats()
	assert.Equal(t, 2, stats.EntityCount)
	assert.Equal(t, int64(6), stats.TotalFrames)

	for _, es := range stats.Entities {
		assert.Equal(t, int64(3), es.FrameCount)
		assert.LessOrEqual(t, es.MinDuration, es.MaxDuration)
		assert.GreaterOrEqual(t, es.TotalDuration, es.LastDuration)
	}
}

func TestRunnerStopsOnContextCancellation(t *testing.T) {
	runner := component.NewRunner(nil)
	drone := component.NewNPC("drone", nil)
	runner.Attach(drone)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		runner.Run(ctx, 1*time.Millisecond)
		done <- true
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("runner did not stop after context cancellation")
	}

	if runner.Frame() == 0 {
		t.Error("expected at least one frame to execute")
	}
	assert.Equal(t, int(runner.Frame())*component.DemoWalkStep, drone.Velocity)
}
