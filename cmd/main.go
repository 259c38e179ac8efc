package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/sohne/vultra/core"
	"github.com/sohne/vultra/glfwcontext"
	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/headless"
	"github.com/sohne/vultra/input"
	options "github.com/sohne/vultra/options"
	"github.com/sohne/vultra/tracelog"
)

func init() {
	runtime.LockOSThread()
}

// openPlatform returns the event source for the window and a cleanup func.
func openPlatform(opts *options.WindowOptions) (graphics.Context, func(), error) {
	if *opts.Headless {
		return headless.NewRealtime(*opts.Width, *opts.Height), func() {}, nil
	}
	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, err
	}
	ctx, err := glfwcontext.New(opts)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, err
	}
	tracelog.Debugf("VULKAN: Required instance extensions: %v", ctx.RequiredInstanceExtensions())
	return ctx, glfwcontext.TerminateGraphics, nil
}

func run(opts *options.WindowOptions) error {
	platform, cleanup, err := openPlatform(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	win, err := core.InitWindow(opts.Config(), platform, nil)
	if err != nil {
		return err
	}
	defer win.CloseWindow()

	background := graphics.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}
	for !win.ShouldQuit() {
		if win.IsKeyDown(input.KeyEscape) {
			win.SignalClose()
		}
		if win.IsKeyPressed(input.KeyF1) {
			tracelog.Infof("Frame %d: %d FPS, %.4fs frame time", win.GetFrameCount(), win.GetFPS(), win.GetFrameTime())
		}

		win.BeginDrawing()
		win.ClearBackground(background)
		if err := win.EndDrawing(); err != nil {
			return err
		}

		if *opts.Frames > 0 && win.GetFrameCount() >= uint64(*opts.Frames) {
			break
		}
	}
	return nil
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		tracelog.Fatalf("Failed to parse options: %v", err)
	}

	if *opts.Help {
		fmt.Println("Vultra Basic Window")
		flag.PrintDefaults()
		return
	}

	level, err := tracelog.ParseLevel(*opts.LogLevel)
	if err != nil {
		tracelog.Warnf("%v, using info", err)
	}
	tracelog.SetLevel(level)

	if err := run(opts); err != nil {
		if errors.Is(err, graphics.ErrPlatformUnavailable) {
			tracelog.Fatalf("SYSTEM: Failed to initialize Platform: %v", err)
		}
		tracelog.Fatalf("Window loop failed: %v", err)
	}
}
