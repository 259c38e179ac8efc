package core

// ConfigFlags are window configuration bits.
type ConfigFlags uint

const (
	FlagNone            ConfigFlags = 0
	FlagVSyncHint       ConfigFlags = 1 << 0
	FlagWindowResizable ConfigFlags = 1 << 1
	FlagMSAAHint        ConfigFlags = 1 << 2
)

type Coordinate struct {
	X, Y int
}

type Dimension struct {
	Width, Height uint
}

// Window is the window geometry and status, kept current by the platform
// resize and move callbacks.
type Window struct {
	Title        string
	Flags        ConfigFlags
	ShouldQuit   bool
	Position     Coordinate
	PrevPosition Coordinate
	Screen       Dimension
}

// DefaultTitle is used when no title is configured.
const DefaultTitle = "vultra"
