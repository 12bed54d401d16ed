package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/gameobject/component"
	"go.uber.org/zap"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 360

	playerRow = 220
	npcRow    = 280
	cellSize  = 8
)

// Game drives one player entity from the keyboard and one NPC
// autonomously, one entity update per ebiten tick. Any pressed key that
// the keymap does not bind translates to an invalid event and resets the
// player.
type Game struct {
	player *component.Entity
	npc    *component.Entity
	keymap *component.Keymap
}

func (g *Game) Update() error {
	if keys := inpututil.AppendJustPressedKeys(nil); len(keys) > 0 {
		g.player.Update(g.keymap.Translate(int64(keys[0])))
	} else {
		g.player.UpdateAutonomous()
	}
	g.npc.UpdateAutonomous()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawEntity(screen, g.player, playerRow, color.RGBA{R: 0x66, G: 0xcc, B: 0xff, A: 0xff})
	drawEntity(screen, g.npc, npcRow, color.RGBA{R: 0xff, G: 0x99, B: 0x66, A: 0xff})

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"arrows: move  any other key: reset\n%s: pos=%d vel=%d\n%s: pos=%d vel=%d",
		g.player.Name, g.player.Position, g.player.Velocity,
		g.npc.Name, g.npc.Position, g.npc.Velocity,
	))
}

func drawEntity(screen *ebiten.Image, e *component.Entity, row int, clr color.Color) {
	// Wrap position into the visible range so the NPC's unbounded drift
	// stays on screen.
	x := e.Position % ScreenWidth
	if x < 0 {
		x += ScreenWidth
	}
	vector.DrawFilledRect(screen, float32(x), float32(row), cellSize, cellSize, clr, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	keymap := component.NewKeymap()
	keymap.Bind(int64(ebiten.KeyArrowLeft), component.MoveLeft)
	keymap.Bind(int64(ebiten.KeyArrowRight), component.MoveRight)

	game := &Game{
		player: component.NewPlayer("hero", logger),
		npc:    component.NewNPC("drone", logger),
		keymap: keymap,
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Component Pattern Demo")
	ebiten.SetTPS(10)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
