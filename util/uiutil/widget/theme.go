package widget

import (
	"image/color"
)

const DefaultPadding = 5

// Colors used by the widgets. Passed to the constructors and to ApplyTheme, there is no global theme.
type Theme struct {
	Name string

	Window    color.NRGBA // surface clear color
	Text      color.NRGBA
	Container BoxStyle
	Button    ButtonStyle
	Input     InputStyle
	Checkbox  CheckboxStyle
	Toggle    ToggleStyle
}

type BoxStyle struct {
	Bg     color.NRGBA
	Border color.NRGBA
}

type ButtonStyle struct {
	Normal   color.NRGBA
	Hover    color.NRGBA
	Pressed  color.NRGBA
	Selected color.NRGBA
	Disabled color.NRGBA
	Border   color.NRGBA
	Text     color.NRGBA
}

type InputStyle struct {
	Bg          color.NRGBA
	Border      color.NRGBA
	Focus       color.NRGBA // border when focused
	Text        color.NRGBA
	Placeholder color.NRGBA
	Caret       color.NRGBA
}

type CheckboxStyle struct {
	Box    color.NRGBA
	Border color.NRGBA
	Mark   color.NRGBA
	Text   color.NRGBA
}

type ToggleStyle struct {
	TrackOff color.NRGBA
	TrackOn  color.NRGBA
	Knob     color.NRGBA
}

//----------

func LightTheme() *Theme {
	return &Theme{
		Name:   "light",
		Window: rgb(235, 235, 235),
		Text:   rgb(20, 20, 20),
		Container: BoxStyle{
			Bg:     rgb(220, 220, 220),
			Border: rgb(160, 160, 160),
		},
		Button: ButtonStyle{
			Normal:   rgb(200, 200, 200),
			Hover:    rgb(180, 180, 180),
			Pressed:  rgb(150, 150, 150),
			Selected: rgb(120, 160, 220),
			Disabled: rgb(225, 225, 225),
			Border:   rgb(100, 100, 100),
			Text:     rgb(0, 0, 0),
		},
		Input: InputStyle{
			Bg:          color.NRGBA{255, 255, 255, 200},
			Border:      rgb(0, 0, 0),
			Focus:       rgb(50, 110, 200),
			Text:        rgb(0, 0, 0),
			Placeholder: rgb(150, 150, 150),
			Caret:       rgb(0, 0, 0),
		},
		Checkbox: CheckboxStyle{
			Box:    rgb(255, 255, 255),
			Border: rgb(60, 60, 60),
			Mark:   rgb(30, 30, 30),
			Text:   rgb(20, 20, 20),
		},
		Toggle: ToggleStyle{
			TrackOff: rgb(180, 180, 180),
			TrackOn:  rgb(80, 170, 90),
			Knob:     rgb(255, 255, 255),
		},
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		Window: rgb(20, 20, 20),
		Text:   rgb(230, 230, 230),
		Container: BoxStyle{
			Bg:     rgb(45, 45, 48),
			Border: rgb(80, 80, 85),
		},
		Button: ButtonStyle{
			Normal:   rgb(100, 100, 100),
			Hover:    rgb(130, 130, 130),
			Pressed:  rgb(70, 70, 70),
			Selected: rgb(60, 100, 160),
			Disabled: rgb(60, 60, 60),
			Border:   rgb(0, 0, 0),
			Text:     rgb(255, 255, 255),
		},
		Input: InputStyle{
			Bg:          color.NRGBA{30, 30, 30, 220},
			Border:      rgb(90, 90, 90),
			Focus:       rgb(90, 150, 240),
			Text:        rgb(240, 240, 240),
			Placeholder: rgb(120, 120, 120),
			Caret:       rgb(240, 240, 240),
		},
		Checkbox: CheckboxStyle{
			Box:    rgb(60, 60, 60),
			Border: rgb(150, 150, 150),
			Mark:   rgb(230, 230, 230),
			Text:   rgb(230, 230, 230),
		},
		Toggle: ToggleStyle{
			TrackOff: rgb(80, 80, 80),
			TrackOn:  rgb(60, 150, 80),
			Knob:     rgb(220, 220, 220),
		},
	}
}

func ThemeByName(name string) (*Theme, bool) {
	switch name {
	case "light":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	}
	return nil, false
}

func (t *Theme) Copy() *Theme {
	u := *t
	return &u
}

func themeOrDefault(t *Theme) *Theme {
	if t == nil {
		return LightTheme()
	}
	return t
}

//----------

// Walks the tree calling OnThemeChange. A nil theme applies the default.
func ApplyTheme(n Node, t *Theme) {
	if isNilNode(n) {
		return
	}
	t = themeOrDefault(t)
	n.OnThemeChange(t)
	for _, c := range n.Childs() {
		ApplyTheme(c, t)
	}
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{r, g, b, 255}
}
