package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/garden/frame"
)

// PerformanceStats plots frame times, per-system timings and the score
// curve of the current round.
type PerformanceStats struct {
	Scheduler *frame.Scheduler

	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int

	round        int
	scoreHistory []float32
}

func NewPerformanceStats(scheduler *frame.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		Scheduler:     scheduler,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Sample records the frame time and, when a placement happened, the score.
func (ps *PerformanceStats) Sample(f *frame.Frame, deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	game := f.Game
	if game.Round() != ps.round {
		ps.round = game.Round()
		ps.scoreHistory = ps.scoreHistory[:0]
	}
	if len(ps.scoreHistory) == 0 {
		ps.scoreHistory = append(ps.scoreHistory, 0)
	}
	for len(ps.scoreHistory) <= game.Moves() {
		ps.scoreHistory = append(ps.scoreHistory, float32(game.Score()))
	}
}

// AvgFrameTime is the mean of the sampled frame times in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(f *frame.Frame) {
	ps.Sample(f, ps.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.AvgFrameTime()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Frames") {
			imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))
			ps.renderSystems()
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Score") {
			if implot.BeginPlotV("Score per Move", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Move", "Score", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("Score", &ps.scoreHistory[0], int32(len(ps.scoreHistory)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func (ps *PerformanceStats) renderSystems() {
	if ps.Scheduler == nil {
		return
	}
	stats := ps.Scheduler.Stats()

	imgui.Text(fmt.Sprintf("Frames: %d | Placements: %d", stats.Frames, stats.Placements))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStats", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableSetupColumn("Runs")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
		}
		imgui.EndTable()
	}
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
