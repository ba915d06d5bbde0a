package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII) - move view center forward
	KeyA     = 65  // A key (ASCII) - move view center left
	KeyS     = 83  // S key (ASCII) - move view center backward
	KeyD     = 68  // D key (ASCII) - move view center right
	KeyQ     = 81  // Q key (ASCII) - move view center up
	KeyZ     = 90  // Z key (ASCII) - move view center down
	KeyT     = 84  // T key (ASCII) - cycle race track
	KeySpace = 32  // Spacebar (ASCII) - pause/resume the race
	KeyEsc   = 256 // Escape key (GLFW)

	Key0 = 48 // 0 key (ASCII) - default camera
	Key1 = 49 // 1 key (ASCII) - helicopter camera
	Key2 = 50 // 2 key (ASCII) - motorcycle camera
	Key3 = 51 // 3 key (ASCII) - first person camera
	Key4 = 52 // 4 key (ASCII) - auto camera
)

// Arrow keys orbit the default camera.
const (
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)
