package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/garden/bot"
	"github.com/plus3/garden/config"
	"github.com/plus3/garden/debugui"
	debugui_ebiten "github.com/plus3/garden/debugui/ebiten"
	"github.com/plus3/garden/frame"
	"github.com/plus3/garden/garden"
)

// Game implements ebiten.Game.
type Game struct {
	Scheduler    *frame.Scheduler
	Renderer     *Renderer
	Camera       *Camera
	Autoplay     *bot.System
	ImguiBackend *debugui_ebiten.ImguiBackend
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	seed := flag.Uint64("seed", cfg.Seed, "Tile seed. 0 picks a random one.")
	queue := flag.Int("queue", cfg.QueueSize, "Tiles dealt per round.")
	width := flag.Int("width", cfg.WindowWidth, "Window width.")
	height := flag.Int("height", cfg.WindowHeight, "Window height.")
	autoplay := flag.String("autoplay", "", "Let a bot play: greedy or random. Space toggles it.")
	hideDebug := flag.Bool("hide-debug", false, "Start with the ImGui windows hidden. F1 toggles them.")
	flag.Parse()

	cfg.Seed = *seed
	cfg.QueueSize = *queue
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	cfg.SetupLogging(os.Stderr)

	imguiBackend := debugui_ebiten.NewImguiBackend("Garden", *width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	opts := append(cfg.GameOptions(), garden.WithLogger(log.Logger))
	game := garden.New(opts...)
	log.Info().Uint64("seed", game.Seed()).Int("queue", game.QueueSize()).Msg("garden ready")

	camera := &Camera{Zoom: 1, ScreenW: *width, ScreenH: *height}
	imguiInput := &debugui.InputState{}

	strategy := bot.Strategy(bot.Greedy{})
	if *autoplay != "" {
		s, ok := bot.ByName(*autoplay, garden.NewRand(game.Seed()+1))
		if !ok {
			log.Fatal().Str("strategy", *autoplay).Msg("unknown strategy")
		}
		strategy = s
	}
	autoplaySystem := &bot.System{Strategy: strategy, Paused: *autoplay == ""}

	scheduler := frame.NewScheduler(game)
	debugSystem := &debugui.System{Input: imguiInput, Hidden: *hideDebug}
	debugSystem.Windows = []debugui.Window{
		debugui.NewGameInspector(),
		debugui.NewPerformanceStats(scheduler, 120),
	}

	// debug UI first so the input systems see this frame's capture state
	scheduler.Register(debugSystem)
	input := &InputSystem{
		Camera:   camera,
		Imgui:    imguiInput,
		DebugUI:  debugSystem,
		Autoplay: autoplaySystem,
	}
	scheduler.Register(input)
	scheduler.Register(&CameraControlSystem{Camera: camera, Imgui: imguiInput})
	scheduler.Register(autoplaySystem)

	g := &Game{
		Scheduler: scheduler,
		Renderer: &Renderer{
			Atlas:  NewTextureAtlas(64),
			Camera: camera,
			Input:  input,
		},
		Camera:       camera,
		Autoplay:     autoplaySystem,
		ImguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.ImguiBackend.BeginFrame()
	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))
	g.ImguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Camera.ScreenW = screen.Bounds().Dx()
	g.Camera.ScreenH = screen.Bounds().Dy()

	game := g.Scheduler.Game()
	g.Renderer.Draw(screen, game)
	drawHUD(screen, game, !g.Autoplay.Paused)

	g.ImguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ImguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
