package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/islewatch/internal/render"
)

// EbitenResourceLoader implements render.ResourceLoader.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a loader that decodes image files from disk.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return wrap(img), nil
}

// EbitenEngine implements render.Engine.
type EbitenEngine struct{}

// NewEngine creates the Ebitengine window and loop driver.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

func (e *EbitenEngine) SetCursorVisible(visible bool) {
	mode := ebiten.CursorModeHidden
	if visible {
		mode = ebiten.CursorModeVisible
	}
	ebiten.SetCursorMode(mode)
}

// RunGame blocks until the window closes or the game terminates. A
// render.ErrTerminate from Update ends the loop with a nil error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&loop{game: game})
}

// loop adapts render.Game to ebiten.Game
type loop struct {
	game render.Game
}

func (l *loop) Update() error {
	err := l.game.Update()
	if errors.Is(err, render.ErrTerminate) {
		return ebiten.Termination
	}
	return err
}

func (l *loop) Draw(screen *ebiten.Image) {
	l.game.Draw(wrap(screen))
}

func (l *loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.game.Layout(outsideWidth, outsideHeight)
}
