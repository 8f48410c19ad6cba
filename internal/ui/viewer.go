package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/hdtv/hdtv/internal/command"
	"github.com/hdtv/hdtv/internal/config"
	"github.com/hdtv/hdtv/internal/display"
	"github.com/hdtv/hdtv/internal/render"
	"github.com/hdtv/hdtv/pkg/spectrum"
)

var cursorColor = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xa0}

// plotBorders are the left, right, top and bottom insets of the plot area
// inside the plot widget, leaving room for the axes.
var plotBorders = [4]unit.Dp{60, 3, 4, 30}

// Options configures a Viewer.
type Options struct {
	Config  *config.Config
	Spectra []string // files loaded at start
	Script  string   // command file run after loading
}

// loadResult carries a spectrum picked in the file dialog back to the
// event goroutine.
type loadResult struct {
	hist *spectrum.Histogram
	err  error
}

// Viewer is the spectrum window: a viewport drawn into a raster, a
// scrollbar, a command entry and a status bar.
type Viewer struct {
	window   *app.Window
	ops      op.Ops
	theme    *theme.Theme
	explorer *explorer.Explorer

	raster *render.Raster
	view   *display.Viewport
	exec   *command.Executor

	scroll scrollbar
	status statusBar
	editor widget.Editor

	openBtn widget.Clickable
	fitBtn  widget.Clickable
	logBtn  widget.Clickable

	openIcon *widget.Icon
	fitIcon  *widget.Icon
	logIcon  *widget.Icon

	plotImage paint.ImageOp
	pressed   display.Button
	borders   [4]int

	loads chan loadResult
}

// New creates a viewer for w.
func New(w *app.Window, opts Options) (*Viewer, error) {
	if w == nil {
		w = new(app.Window)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	w.Option(app.Title("hdtv"), app.Size(unit.Dp(float32(cfg.Width)), unit.Dp(float32(cfg.Height))))

	raster, err := render.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		window:   w,
		theme:    theme.NewTheme("", nil, true),
		explorer: explorer.NewExplorer(w),
		raster:   raster,
		loads:    make(chan loadResult, 1),
	}
	v.view = display.NewViewport(raster)
	v.view.SetLogf(log.Printf)
	v.view.SetScrollbar(&v.scroll)
	v.view.SetStatusBar(&v.status)
	if err := cfg.Apply(v.view); err != nil {
		return nil, err
	}

	v.exec, err = command.NewExecutor(v.view, command.WithPalette(palette))
	if err != nil {
		return nil, err
	}

	v.editor.SingleLine = true
	v.editor.Submit = true

	if icon, err := widget.NewIcon(icons.FileFolderOpen); err == nil {
		v.openIcon = icon
	}
	if icon, err := widget.NewIcon(icons.NavigationFullscreen); err == nil {
		v.fitIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionTimeline); err == nil {
		v.logIcon = icon
	}

	for _, path := range opts.Spectra {
		v.runCommand(fmt.Sprintf("spectrum load %q", path))
	}
	if len(opts.Spectra) > 0 {
		v.view.ShowAll()
	}
	if opts.Script != "" {
		out, err := v.exec.RunFile(opts.Script)
		v.report(out, err)
	}
	return v, nil
}

// Viewport returns the viewport shown in the window.
func (v *Viewer) Viewport() *display.Viewport { return v.view }

// Run blocks processing window events until the window closes.
func (v *Viewer) Run() error {
	defer v.raster.Close()
	for {
		e := v.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&v.ops, ev)
			v.drainLoads()
			v.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (v *Viewer) drainLoads() {
	for {
		select {
		case res := <-v.loads:
			if res.err != nil {
				v.report("", res.err)
				continue
			}
			msg := v.exec.AddSpectrum(res.hist)
			v.view.ShowAll()
			v.report(msg, nil)
		default:
			return
		}
	}
}

func (v *Viewer) runCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	out, err := v.exec.Execute(line)
	v.report(out, err)
}

// report shows the last line of out, or err, in the message part of the
// status bar.
func (v *Viewer) report(out string, err error) {
	if err != nil {
		log.Printf("[COMMAND] %v", err)
		v.status.SetText("error: "+err.Error(), statusMessage)
		return
	}
	if out == "" {
		return
	}
	lines := strings.Split(out, "\n")
	for _, l := range lines {
		log.Printf("[COMMAND] %s", l)
	}
	v.status.SetText(lines[len(lines)-1], statusMessage)
}

func (v *Viewer) openFilePicker() {
	go func() {
		file, err := v.explorer.ChooseFile()
		if err != nil {
			if err != explorer.ErrUserDecline {
				v.loads <- loadResult{err: fmt.Errorf("file picker: %w", err)}
				v.window.Invalidate()
			}
			return
		}
		defer file.Close()

		name := "spectrum"
		if f, ok := file.(*os.File); ok {
			name = filepath.Base(f.Name())
		}
		h, err := spectrum.Load(name, file)
		v.loads <- loadResult{hist: h, err: err}
		v.window.Invalidate()
	}()
}

func (v *Viewer) layout(gtx layout.Context) layout.Dimensions {
	th := v.theme
	paint.FillShape(gtx.Ops, th.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	if v.openBtn.Clicked(gtx) {
		v.openFilePicker()
	}
	if v.fitBtn.Clicked(gtx) {
		v.view.ShowAll()
	}
	if v.logBtn.Clicked(gtx) {
		v.view.ToggleLogScale()
	}
	for {
		ev, ok := v.editor.Update(gtx)
		if !ok {
			break
		}
		if s, ok := ev.(widget.SubmitEvent); ok {
			v.runCommand(s.Text)
			v.editor.SetText("")
		}
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(v.layoutToolbar),
		layout.Flexed(1, v.layoutPlot),
		layout.Rigid(v.layoutScrollbar),
		layout.Rigid(v.layoutCommand),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.status.Layout(gtx, th.Theme)
		}),
	)
}

func (v *Viewer) layoutToolbar(gtx layout.Context) layout.Dimensions {
	th := v.theme.Theme
	button := func(btn *widget.Clickable, icon *widget.Icon, desc string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if icon == nil {
				return material.Button(th, btn, desc).Layout(gtx)
			}
			b := material.IconButton(th, btn, icon, desc)
			b.Size = unit.Dp(18)
			b.Inset = layout.UniformInset(unit.Dp(6))
			return layout.Inset{Right: unit.Dp(4)}.Layout(gtx, b.Layout)
		})
	}
	inset := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			button(&v.openBtn, v.openIcon, "Open"),
			button(&v.fitBtn, v.fitIcon, "Show all"),
			button(&v.logBtn, v.logIcon, "Log scale"),
		)
	})
}

func (v *Viewer) layoutPlot(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if size.X <= 0 || size.Y <= 0 {
		return layout.Dimensions{Size: size}
	}
	if v.raster.Size() != size {
		v.raster.Resize(size.X, size.Y)
		v.view.SetSize(size.X, size.Y)
	}
	if b := scaleBorders(gtx.Metric); b != v.borders {
		v.borders = b
		v.view.SetBorders(b[0], b[1], b[2], b[3])
	}
	v.handlePlotInput(gtx)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, v)

	if dirty := v.raster.TakeDirty(); !dirty.Empty() || v.plotImage.Size() == (image.Point{}) {
		v.plotImage = paint.NewImageOp(v.raster.Image())
		v.plotImage.Filter = paint.FilterNearest
	}
	v.plotImage.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	if p, area, shown := v.raster.Cursor(); shown {
		vert := image.Rect(p.X, area.Min.Y, p.X+1, area.Max.Y)
		horiz := image.Rect(area.Min.X, p.Y, area.Max.X, p.Y+1)
		paint.FillShape(gtx.Ops, cursorColor, clip.Rect(vert).Op())
		paint.FillShape(gtx.Ops, cursorColor, clip.Rect(horiz).Op())
	}
	return layout.Dimensions{Size: size}
}

// scaleBorders converts plotBorders to pixels.
func scaleBorders(m unit.Metric) [4]int {
	var b [4]int
	for i, d := range plotBorders {
		b[i] = m.Dp(d)
	}
	return b
}

func (v *Viewer) handlePlotInput(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: v},
			key.Filter{Focus: v, Name: "", Optional: key.ModShift},
			pointer.Filter{
				Target:  v,
				Kinds:   pointer.Press | pointer.Release | pointer.Move | pointer.Drag | pointer.Enter | pointer.Leave | pointer.Scroll | pointer.Cancel,
				ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
			},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.Event:
			if e.State != key.Press {
				continue
			}
			if isQuit(e) {
				v.window.Perform(system.ActionClose)
				continue
			}
			if ke, ok := translateKey(e); ok {
				v.view.HandleKey(ke)
			}
		case pointer.Event:
			if e.Kind == pointer.Press {
				gtx.Execute(key.FocusCmd{Tag: v})
			}
			for _, de := range translatePointer(e, &v.pressed) {
				v.view.HandleEvent(de)
			}
		}
	}
}

func (v *Viewer) layoutScrollbar(gtx layout.Context) layout.Dimensions {
	if pos, moved := v.scroll.Update(gtx); moved {
		v.view.HandleScrollbar(pos)
	}
	return v.scroll.Layout(gtx, v.theme.Bg2, v.theme.Palette.ContrastBg)
}

func (v *Viewer) layoutCommand(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		ed := material.Editor(v.theme.Theme, &v.editor, "command, e.g. spectrum load co60.spc")
		return ed.Layout(gtx)
	})
}
