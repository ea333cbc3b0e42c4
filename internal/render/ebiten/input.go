package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/islewatch/internal/render"
)

var keys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyQ:      ebiten.KeyQ,
	render.KeyE:      ebiten.KeyE,
	render.KeyR:      ebiten.KeyR,
	render.KeyEscape: ebiten.KeyEscape,
}

var buttons = map[render.MouseButton]ebiten.MouseButton{
	render.MouseButtonLeft: ebiten.MouseButtonLeft,
}

// EbitenInputManager implements render.InputManager. Unmapped keys and
// buttons always read as released.
type EbitenInputManager struct{}

// NewInputManager creates the Ebitengine input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	b, ok := buttons[button]
	return ok && inpututil.IsMouseButtonJustPressed(b)
}
