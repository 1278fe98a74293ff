// Theme files: colors in hex ("#rrggbb" or "#rrggbbaa") over a base theme. Missing entries keep the base value.
package themeutil

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/uiutil/widget"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type File struct {
	Name string `toml:"name" yaml:"name"`
	Base string `toml:"base" yaml:"base"` // "light" or "dark", overrides the given base

	Window    string     `toml:"window" yaml:"window"`
	Text      string     `toml:"text" yaml:"text"`
	Container BoxFile    `toml:"container" yaml:"container"`
	Button    ButtonFile `toml:"button" yaml:"button"`
	Input     InputFile  `toml:"input" yaml:"input"`
	Checkbox  CheckFile  `toml:"checkbox" yaml:"checkbox"`
	Toggle    ToggleFile `toml:"toggle" yaml:"toggle"`
}

type BoxFile struct {
	Bg     string `toml:"bg" yaml:"bg"`
	Border string `toml:"border" yaml:"border"`
}

type ButtonFile struct {
	Normal   string `toml:"normal" yaml:"normal"`
	Hover    string `toml:"hover" yaml:"hover"`
	Pressed  string `toml:"pressed" yaml:"pressed"`
	Selected string `toml:"selected" yaml:"selected"`
	Disabled string `toml:"disabled" yaml:"disabled"`
	Border   string `toml:"border" yaml:"border"`
	Text     string `toml:"text" yaml:"text"`
}

type InputFile struct {
	Bg          string `toml:"bg" yaml:"bg"`
	Border      string `toml:"border" yaml:"border"`
	Focus       string `toml:"focus" yaml:"focus"`
	Text        string `toml:"text" yaml:"text"`
	Placeholder string `toml:"placeholder" yaml:"placeholder"`
	Caret       string `toml:"caret" yaml:"caret"`
}

type CheckFile struct {
	Box    string `toml:"box" yaml:"box"`
	Border string `toml:"border" yaml:"border"`
	Mark   string `toml:"mark" yaml:"mark"`
	Text   string `toml:"text" yaml:"text"`
}

type ToggleFile struct {
	TrackOff string `toml:"trackoff" yaml:"trackoff"`
	TrackOn  string `toml:"trackon" yaml:"trackon"`
	Knob     string `toml:"knob" yaml:"knob"`
}

//----------

// Reads a .toml, .yaml or .yml theme file. A nil base uses the light theme.
func Load(filename string, base *widget.Theme) (*widget.Theme, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "theme")
	}
	t, err := Decode(b, filepath.Ext(filename), base)
	if err != nil {
		return nil, errors.Wrapf(err, "theme: %v", filename)
	}
	return t, nil
}

func Decode(b []byte, ext string, base *widget.Theme) (*widget.Theme, error) {
	f := &File{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(b, f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension: %q", ext)
	}
	return f.Theme(base)
}

func (f *File) Theme(base *widget.Theme) (*widget.Theme, error) {
	if f.Base != "" {
		t, ok := widget.ThemeByName(f.Base)
		if !ok {
			return nil, fmt.Errorf("unknown base theme: %q", f.Base)
		}
		base = t
	}
	if base == nil {
		base = widget.LightTheme()
	}
	t := base.Copy()
	if f.Name != "" {
		t.Name = f.Name
	}

	type pair struct {
		name string
		s    string
		c    *color.NRGBA
	}
	pairs := []pair{
		{"window", f.Window, &t.Window},
		{"text", f.Text, &t.Text},
		{"container.bg", f.Container.Bg, &t.Container.Bg},
		{"container.border", f.Container.Border, &t.Container.Border},
		{"button.normal", f.Button.Normal, &t.Button.Normal},
		{"button.hover", f.Button.Hover, &t.Button.Hover},
		{"button.pressed", f.Button.Pressed, &t.Button.Pressed},
		{"button.selected", f.Button.Selected, &t.Button.Selected},
		{"button.disabled", f.Button.Disabled, &t.Button.Disabled},
		{"button.border", f.Button.Border, &t.Button.Border},
		{"button.text", f.Button.Text, &t.Button.Text},
		{"input.bg", f.Input.Bg, &t.Input.Bg},
		{"input.border", f.Input.Border, &t.Input.Border},
		{"input.focus", f.Input.Focus, &t.Input.Focus},
		{"input.text", f.Input.Text, &t.Input.Text},
		{"input.placeholder", f.Input.Placeholder, &t.Input.Placeholder},
		{"input.caret", f.Input.Caret, &t.Input.Caret},
		{"checkbox.box", f.Checkbox.Box, &t.Checkbox.Box},
		{"checkbox.border", f.Checkbox.Border, &t.Checkbox.Border},
		{"checkbox.mark", f.Checkbox.Mark, &t.Checkbox.Mark},
		{"checkbox.text", f.Checkbox.Text, &t.Checkbox.Text},
		{"toggle.trackoff", f.Toggle.TrackOff, &t.Toggle.TrackOff},
		{"toggle.trackon", f.Toggle.TrackOn, &t.Toggle.TrackOn},
		{"toggle.knob", f.Toggle.Knob, &t.Toggle.Knob},
	}
	for _, p := range pairs {
		if p.s == "" {
			continue
		}
		c, err := imageutil.ParseHexColor(p.s)
		if err != nil {
			return nil, errors.Wrap(err, p.name)
		}
		*p.c = c
	}
	return t, nil
}
