package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/plus3/garden/garden"
)

// hudText is the status overlay for the current game.
func hudText(game *garden.Game, autoplay bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d\n", game.Score())

	if game.IsGameOver() {
		fmt.Fprintf(&b, "GAME OVER - %d tiles\n", game.FinalTileCount())
		b.WriteString("Press R to play again\n")
	} else {
		fmt.Fprintf(&b, "Current: %s\n", game.CurrentType())
		fmt.Fprintf(&b, "Tiles remaining: %d\n", game.TilesRemaining())
		upcoming := game.Upcoming(3)
		names := make([]string, len(upcoming))
		for i, t := range upcoming {
			names[i] = t.String()
		}
		fmt.Fprintf(&b, "Next: %s\n", strings.Join(names, ", "))
	}

	if autoplay {
		b.WriteString("[autoplay]\n")
	}
	b.WriteString("LMB place | RMB pan | wheel zoom | Home recenter | R restart | Space autoplay | F1 debug | Q quit")
	return b.String()
}

func drawHUD(screen *ebiten.Image, game *garden.Game, autoplay bool) {
	text := hudText(game, autoplay)
	lines := strings.Count(text, "\n") + 1
	// DebugPrint glyphs are 16px tall
	ebitenutil.DebugPrintAt(screen, text, 10, screen.Bounds().Dy()-lines*16-10)
}
