package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/rs/zerolog"
)

const title = "Blockfall"

// Game adapts an engine to ebiten.Game. Every ebiten tick steps the engine
// once against the monotonic clock; gravity timing comes from the session,
// not from the tick rate.
type Game struct {
	engine   *game.Engine
	renderer *Renderer
	bindings *Bindings
	overlay  *debugui_ebiten.ImguiBackend
	pressed  []ebiten.Key
	width    int
	height   int
	log      zerolog.Logger
}

// NewGame builds the engine for cfg. With cfg.Debug set, the Dear ImGui
// overlay is installed over the board.
func NewGame(cfg game.Config, bindings *Bindings, logger zerolog.Logger) (*Game, error) {
	if bindings == nil {
		bindings = DefaultBindings()
	}

	renderer := NewRenderer(cfg.CellSize)
	engine, err := game.NewEngine(cfg, loop.NewMonotonicClock(),
		game.WithPresenter(renderer),
		game.WithEngineLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("new canvas game: %w", err)
	}

	w, h := renderer.SizeFor(cfg.Rows, cfg.Cols)
	g := &Game{
		engine:   engine,
		renderer: renderer,
		bindings: bindings,
		width:    w,
		height:   h,
		log:      logger.With().Str("component", "canvas").Logger(),
	}

	if cfg.Debug {
		g.width, g.height = w+400, max(h, 760)
		overlay, err := debugui_ebiten.NewImguiBackend(title+" (debug)", g.width, g.height)
		if err != nil {
			return nil, fmt.Errorf("new canvas game: %w", err)
		}
		debugui.Install(engine)
		g.overlay = overlay
		g.log.Info().Msg("debug overlay enabled")
	}

	return g, nil
}

func (g *Game) Engine() *game.Engine {
	return g.engine
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	if !debugui.WantsKeyboard(g.engine.Scheduler().Resources()) {
		g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
		for a := range g.bindings.Actions(g.pressed) {
			if !g.engine.Push(a) {
				g.log.Warn().Stringer("action", a).Msg("input queue full")
			}
		}
	}

	g.engine.Step()

	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if g.engine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and plays until the player quits or closes it.
func Run(g *Game) error {
	if g.overlay == nil {
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	g.log.Info().
		Int("score", g.engine.Session().Score()).
		Int("lines", g.engine.Session().Lines()).
		Msg("window closed")
	return nil
}
