package render

// InputManager reports the key and button state sampled for the current tick
type InputManager interface {
	// IsKeyPressed reports whether key is held down.
	IsKeyPressed(key Key) bool
	// IsKeyJustPressed reports whether key went down this tick.
	IsKeyJustPressed(key Key) bool
	// IsMouseButtonJustPressed reports whether button went down this tick.
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key is a keyboard key the game polls
type Key int

const (
	KeyW Key = iota // Move up
	KeyA            // Move left
	KeyS            // Move down
	KeyD            // Move right
	KeyQ            // Zoom in
	KeyE            // Zoom out
	KeyR            // Restart after death
	KeyEscape       // Quit
)

// MouseButton is a mouse button the game polls
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota // Sword swing
)
