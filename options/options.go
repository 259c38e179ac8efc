package options

import (
	"flag"

	"github.com/sohne/vultra/core"
)

// WindowOptions are the settings of the example programs. Fields are
// pointers so they can be bound straight to flags.
type WindowOptions struct {
	Width      *int
	Height     *int
	Title      *string
	FPS        *int
	Resizable  *bool
	VSync      *bool
	MSAA       *bool
	LogLevel   *string
	ConfigFile *string
	Headless   *bool
	Frames     *int // stop after this many frames, 0 runs until closed
	Help       *bool
}

// Register binds the window options to flags on fs.
func Register(fs *flag.FlagSet) *WindowOptions {
	return &WindowOptions{
		Width:      fs.Int("width", 640, "Window width"),
		Height:     fs.Int("height", 480, "Window height"),
		Title:      fs.String("title", "Vultra: Basic Window", "Window title"),
		FPS:        fs.Int("fps", 60, "Target frames per second (0 for uncapped)"),
		Resizable:  fs.Bool("resizable", false, "Allow the window to be resized"),
		VSync:      fs.Bool("vsync", false, "Request vertical sync"),
		MSAA:       fs.Bool("msaa", false, "Request multi-sample anti-aliasing"),
		LogLevel:   fs.String("log-level", "info", "Log level (trace, debug, info, warning, error, fatal, none)"),
		ConfigFile: fs.String("config", "", "YAML or TOML file with window settings"),
		Headless:   fs.Bool("headless", false, "Run the frame loop without opening a window"),
		Frames:     fs.Int("frames", 0, "Exit after this many frames (0 runs until the window closes)"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// Parse registers the options on fs, parses args and applies the config
// file named by -config. Flags given on the command line win over values
// from the file.
func Parse(fs *flag.FlagSet, args []string) (*WindowOptions, error) {
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *opts.ConfigFile == "" {
		return opts, nil
	}

	file, err := LoadFile(*opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	opts.Apply(file, explicit)
	return opts, nil
}

// Config converts the options into the initial window configuration.
func (o *WindowOptions) Config() core.Config {
	var flags core.ConfigFlags
	if *o.Resizable {
		flags |= core.FlagWindowResizable
	}
	if *o.VSync {
		flags |= core.FlagVSyncHint
	}
	if *o.MSAA {
		flags |= core.FlagMSAAHint
	}
	return core.Config{
		Width:     *o.Width,
		Height:    *o.Height,
		Title:     *o.Title,
		Flags:     flags,
		TargetFPS: *o.FPS,
	}
}
