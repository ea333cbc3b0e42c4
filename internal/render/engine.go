package render

import "errors"

// ErrTerminate is returned from Game.Update to end the game loop normally.
var ErrTerminate = errors.New("render: terminate")

// ResourceLoader reads images from disk
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game is driven by the Engine at a fixed tick rate
type Game interface {
	// Update advances the simulation by one tick. Returning ErrTerminate
	// ends the loop without error.
	Update() error
	// Draw renders the current state onto screen.
	Draw(screen Image)
	// Layout maps the outside window size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the frame loop
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)
	SetCursorVisible(visible bool)

	// RunGame blocks until the window closes or Update returns an error.
	RunGame(game Game) error
}
