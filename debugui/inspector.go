package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/garden/frame"
	"github.com/plus3/garden/garden"
)

// GameInspector shows the game observables and lets the user place tiles
// on frontier cells or restart.
type GameInspector struct {
	// BestFirst sorts the frontier table by the bonus the current tile
	// would earn.
	BestFirst bool
}

func NewGameInspector() *GameInspector {
	return &GameInspector{BestFirst: true}
}

type frontierRow struct {
	pos   garden.Coord
	bonus int
}

func (gi *GameInspector) rows(game *garden.Game) []frontierRow {
	grid := game.Grid()
	frontier := grid.Frontier()
	rows := make([]frontierRow, len(frontier))
	for i, c := range frontier {
		rows[i] = frontierRow{pos: c}
		if !game.IsGameOver() {
			rows[i].bonus = garden.MatchBonus(game.CurrentType(), grid.Neighbors(c))
		}
	}
	if gi.BestFirst {
		// stable, so equal bonuses keep frontier order
		slices.SortStableFunc(rows, func(a, b frontierRow) int {
			return cmp.Compare(b.bonus, a.bonus)
		})
	}
	return rows
}

func (gi *GameInspector) Render(f *frame.Frame) {
	game := f.Game

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 460), imgui.CondOnce)

	if !imgui.BeginV("Garden", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Round: %d (seed %d)", game.Round(), game.Seed()))
	imgui.Text(fmt.Sprintf("Score: %d", game.Score()))
	imgui.Text(fmt.Sprintf("Moves: %d | Bonus tiles: %d", game.Moves(), game.BonusTiles()))

	if game.IsGameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "GAME OVER")
		imgui.Text(fmt.Sprintf("Final tiles: %d", game.FinalTileCount()))
	} else {
		imgui.PushStyleColorVec4(imgui.ColText, tileVec4(game.CurrentType()))
		imgui.Text(fmt.Sprintf("Current: %s", game.CurrentType()))
		imgui.PopStyleColor()
		imgui.Text(fmt.Sprintf("Tiles remaining: %d", game.TilesRemaining()))

		upcoming := game.Upcoming(5)
		names := make([]string, len(upcoming))
		for i, t := range upcoming {
			names[i] = t.String()
		}
		imgui.Text("Next: " + strings.Join(names, ", "))

		total := game.Moves() + game.TilesRemaining() + 1
		imgui.ProgressBarV(float32(game.Moves())/float32(total), imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d", game.Moves(), total))
	}

	if imgui.Button("Restart") {
		f.Commands.Restart()
	}
	imgui.SameLine()
	imgui.Checkbox("Best first", &gi.BestFirst)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Frontier: %d cells", game.Grid().FrontierLen()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Frontier", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Cell")
		imgui.TableSetupColumn("Bonus")
		imgui.TableSetupColumn("")
		imgui.TableHeadersRow()

		for _, row := range gi.rows(game) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.pos.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.bonus))
			imgui.TableNextColumn()
			if !game.IsGameOver() && imgui.Button(fmt.Sprintf("Place##%d,%d", row.pos.X, row.pos.Y)) {
				f.Commands.Place(row.pos)
			}
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Tiles (%d)", game.Grid().TileCount())) {
		for _, tile := range game.Grid().Tiles() {
			imgui.PushStyleColorVec4(imgui.ColText, tileVec4(tile.Type))
			imgui.BulletText(fmt.Sprintf("%s %s (neighbors +%d)", tile.Pos, tile.Type, tile.MatchBonus(game.Grid().Neighbors(tile.Pos))))
			imgui.PopStyleColor()
		}
		imgui.TreePop()
	}

	imgui.End()
}
