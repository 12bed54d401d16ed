package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/gameobject/component"
	"go.uber.org/zap"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a YAML scene file. Empty uses the built-in scene.")
	frames := flag.Int("frames", 0, "Number of frames to simulate. Zero uses the scene's count; if that is also zero, run until interrupted.")
	interval := flag.Duration("interval", 16*time.Millisecond, "Delay between frames.")
	report := flag.Bool("report", true, "Print the frame report after the run.")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	scene := builtinScene()
	if *scenePath != "" {
		f, err := os.Open(*scenePath)
		if err != nil {
			log.Fatalf("opening scene: %v", err)
		}
		scene, err = component.LoadScene(f)
		f.Close()
		if err != nil {
			log.Fatalf("loading scene %s: %v", *scenePath, err)
		}
	}

	entities, script, err := scene.Build(logger)
	if err != nil {
		log.Fatalf("building scene: %v", err)
	}

	runner := component.NewRunner(script)
	for _, e := range entities {
		runner.Attach(e)
	}

	frameCount := *frames
	if frameCount == 0 {
		frameCount = scene.Frames
	}

	start := time.Now()
	if frameCount > 0 {
		for i := 0; i < frameCount; i++ {
			runner.Once()
			if *interval > 0 {
				time.Sleep(*interval)
			}
		}
	} else {
		log.Println("No frame count configured, running until interrupted...")
		tick := *interval
		if tick <= 0 {
			tick = 16 * time.Millisecond
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runner.Run(ctx, tick)
		stop()
	}
	elapsed := time.Since(start)

	if *report {
		r := &Report{
			Frames:   runner.Frame(),
			Elapsed:  elapsed,
			Entities: entities,
			Stats:    runner.GetStats(),
		}
		if err := r.Generate(os.Stdout); err != nil {
			log.Fatalf("generating report: %v", err)
		}
	}
}

// builtinScene mirrors the classic demo: one keyed player walked right
// then reset by an out-of-band key, one NPC drifting on its own.
func builtinScene() *component.Scene {
	return &component.Scene{
		Entities: []component.SceneEntity{
			{Name: "hero", Kind: component.KindPlayer},
			{Name: "drone", Kind: component.KindNPC},
		},
		Frames: 8,
		Script: []component.SceneCue{
			{Frame: 0, Entity: "hero", Event: "right"},
			{Frame: 1, Entity: "hero", Event: "right"},
			{Frame: 4, Entity: "hero", Event: "left"},
		},
	}
}
