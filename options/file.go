package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of the window settings. Unset keys leave the
// matching option untouched.
type File struct {
	Window WindowFile `yaml:"window" toml:"window"`
	Log    LogFile    `yaml:"log" toml:"log"`
}

type WindowFile struct {
	Width     *int    `yaml:"width" toml:"width"`
	Height    *int    `yaml:"height" toml:"height"`
	Title     *string `yaml:"title" toml:"title"`
	FPS       *int    `yaml:"fps" toml:"fps"`
	Resizable *bool   `yaml:"resizable" toml:"resizable"`
	VSync     *bool   `yaml:"vsync" toml:"vsync"`
	MSAA      *bool   `yaml:"msaa" toml:"msaa"`
}

type LogFile struct {
	Level *string `yaml:"level" toml:"level"`
}

// LoadFile reads settings from a .yaml, .yml or .toml file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return &f, nil
}

// Apply copies values from f into o, skipping flags named in explicit.
func (o *WindowOptions) Apply(f *File, explicit map[string]bool) {
	set(o.Width, f.Window.Width, explicit["width"])
	set(o.Height, f.Window.Height, explicit["height"])
	set(o.FPS, f.Window.FPS, explicit["fps"])
	set(o.Title, f.Window.Title, explicit["title"])
	set(o.LogLevel, f.Log.Level, explicit["log-level"])
	set(o.Resizable, f.Window.Resizable, explicit["resizable"])
	set(o.VSync, f.Window.VSync, explicit["vsync"])
	set(o.MSAA, f.Window.MSAA, explicit["msaa"])
}

func set[T any](dst, src *T, skip bool) {
	if src != nil && !skip {
		*dst = *src
	}
}
