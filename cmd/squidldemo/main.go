// Demo of the squidl widgets on an X11 window.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/jmigpin/squidl/driver"
	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/themeutil"
	"github.com/jmigpin/squidl/util/uiutil"
	"github.com/jmigpin/squidl/util/uiutil/geom"
	"github.com/jmigpin/squidl/util/uiutil/widget"
)

func main() {
	log.SetFlags(log.Llongfile)

	themeName := flag.String("theme", "light", "theme: light, dark")
	themeFile := flag.String("themefile", "", "toml/yaml theme file, reloaded on change")
	backdrop := flag.String("backdrop", "", "background image (png, jpeg, gif, bmp, webp)")
	fontFile := flag.String("font", "", "ttf font file (default: go regular)")
	fontSize := flag.Float64("fontsize", 14, "font size")
	fps := flag.Int("fps", uiutil.DefaultFPS, "frames per second")
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 480, "window height")
	flag.Parse()

	if err := run(&options{
		themeName: *themeName,
		themeFile: *themeFile,
		backdrop:  *backdrop,
		fontFile:  *fontFile,
		fontSize:  *fontSize,
		fps:       *fps,
		size:      image.Point{*width, *height},
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	themeName string
	themeFile string
	backdrop  string
	fontFile  string
	fontSize  float64
	fps       int
	size      image.Point
}

func run(opt *options) error {
	theme, ok := widget.ThemeByName(opt.themeName)
	if !ok {
		return fmt.Errorf("unknown theme: %q", opt.themeName)
	}
	if opt.themeFile != "" {
		t, err := themeutil.Load(opt.themeFile, theme)
		if err != nil {
			return err
		}
		theme = t
	}

	ff, err := fontFace(opt)
	if err != nil {
		return err
	}

	root := widget.NewPanel(theme)
	root.SetFont(ff)
	if opt.backdrop != "" {
		img, err := imageutil.LoadImage(opt.backdrop)
		if err != nil {
			return err
		}
		bd := widget.NewBackdrop(img)
		bd.SetOpacity(0.6)
		root.Backdrop = bd
	}

	win, err := driver.NewWindow(opt.size)
	if err != nil {
		return err
	}
	win.SetWindowName("squidl demo")

	d := &demo{}
	sui := uiutil.NewSimpleUI(win, root, theme)
	sui.FPS = opt.fps
	sui.OnError = func(err error) { log.Print(err) }
	d.sui = sui
	d.build(root, theme)
	widget.ApplyTheme(root, theme)
	sui.AddNode(root)

	if opt.themeFile != "" {
		tw, err := themeutil.Watch(opt.themeFile, theme, func(t *widget.Theme, err error) {
			if err != nil {
				sui.RunOnUIThread(func() { sui.OnError(err) })
				return
			}
			sui.RunOnUIThread(func() { sui.SetTheme(t) })
		})
		if err != nil {
			log.Print(err)
		} else {
			defer tw.Close()
		}
	}

	sui.EventLoop() // blocks
	return nil
}

func fontFace(opt *options) (*fontutil.FontFace, error) {
	f := fontutil.DefaultFont()
	if opt.fontFile != "" {
		b, err := os.ReadFile(opt.fontFile)
		if err != nil {
			return nil, err
		}
		f2, err := fontutil.FontsMan.Font(b)
		if err != nil {
			return nil, err
		}
		f = f2
	}
	return f.FontFace2(opt.fontSize), nil
}

//----------

type demo struct {
	sui    *uiutil.SimpleUI
	clicks int
}

func (d *demo) build(root *widget.Panel, t *widget.Theme) {
	vb := widget.NewVBox(t, 6)
	vb.SetManagedByChilds(true)
	vb.SetRect(geom.R(20, 20, 0, 0))
	root.Add(vb)

	title := widget.NewLabel(t, "squidl\nretained widgets")
	vb.Add(title)

	count := widget.NewLabel(t, "clicks: 0")
	b := widget.NewButton(t, "Click me")
	b.OnClick = func() {
		d.clicks++
		count.Text = fmt.Sprintf("clicks: %d", d.clicks)
	}
	hb := widget.NewHBox(t, 6)
	hb.Padding = geom.Insets{}
	hb.SetManagedByChilds(true)
	hb.Add(b)
	hb.Add(count)
	vb.Add(hb)

	tb := widget.NewButton(t, "Toggle")
	tb.Toggleable = true
	vb.Add(tb)

	db := widget.NewButton(t, "Disabled")
	db.Disabled = true
	vb.Add(db)

	in := widget.NewInput(t, "type here")
	in.Size = image.Point{200, 0}
	echo := widget.NewLabel(t, "")
	in.OnChange = func(s string) { echo.Text = s }
	vb.Add(in)
	vb.Add(echo)

	g := widget.NewGrid(t, 2, 4)
	g.SetManagedByChilds(true)
	for i := 0; i < 3; i++ {
		g.Add(widget.NewCheckbox(t, fmt.Sprintf("option %d", i+1), i == 0))
		g.Add(widget.NewToggleSwitch(t, i == 1))
	}
	vb.Add(g)

	dark := widget.NewCheckbox(t, "dark theme", t.Name == "dark")
	dark.OnToggle = func(v bool) {
		name := "light"
		if v {
			name = "dark"
		}
		t2, _ := widget.ThemeByName(name)
		d.sui.SetTheme(t2)
	}
	vb.Add(dark)

	vb.Add(widget.NewRectangle(t.Button.Selected, 200, 4))
}
