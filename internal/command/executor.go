package command

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/hdtv/hdtv/internal/display"
	"github.com/hdtv/hdtv/pkg/spectrum"
)

// ErrNoSuchObject is returned when a statement names an id that is not in use.
var ErrNoSuchObject = errors.New("no such object")

// Executor runs parsed statements against a viewport.
type Executor struct {
	view    *display.Viewport
	parser  *Parser
	palette []color.NRGBA

	nextColor int
	load      func(path string) (*spectrum.Histogram, error)
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPalette sets the colors objects are drawn with.
func WithPalette(p []color.NRGBA) ExecutorOption {
	return func(e *Executor) {
		if len(p) > 0 {
			e.palette = p
		}
	}
}

// WithLoader replaces the function used by "spectrum load".
func WithLoader(load func(path string) (*spectrum.Histogram, error)) ExecutorOption {
	return func(e *Executor) { e.load = load }
}

// NewExecutor creates an executor for v.
func NewExecutor(v *display.Viewport, opts ...ExecutorOption) (*Executor, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	e := &Executor{
		view:    v,
		parser:  parser,
		palette: display.Palette,
		load:    spectrum.LoadFile,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Viewport returns the viewport statements act on.
func (e *Executor) Viewport() *display.Viewport { return e.view }

// Execute runs a single line of input and returns one result line per
// statement that produced output.
func (e *Executor) Execute(line string) (string, error) {
	script, err := e.parser.ParseString(line)
	if err != nil {
		return "", err
	}
	return e.Run(script)
}

// RunScript parses and runs a script from r.
func (e *Executor) RunScript(name string, r io.Reader) (string, error) {
	script, err := e.parser.Parse(name, r)
	if err != nil {
		return "", err
	}
	return e.Run(script)
}

// RunFile parses and runs the script at path.
func (e *Executor) RunFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return e.RunScript(path, file)
}

// Run executes the statements of script in order, stopping at the first
// failure. The view is updated once at the end, also after a failure, so
// that the effect of the statements that did run becomes visible.
func (e *Executor) Run(script *Script) (string, error) {
	var out []string
	defer e.view.Update(true)

	for _, st := range script.Statements {
		msg, err := e.exec(st)
		if err != nil {
			return strings.Join(out, "\n"), fmt.Errorf("line %d: %w", st.Pos.Line, err)
		}
		if msg != "" {
			out = append(out, msg)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (e *Executor) exec(st *Statement) (string, error) {
	v := e.view
	switch {
	case st.Spectrum != nil:
		return e.execSpectrum(st.Spectrum)
	case st.Function != nil:
		return e.execFunction(st.Function)
	case st.Marker != nil:
		return e.execMarker(st.Marker)

	case st.Offset != nil:
		if st.Offset.Axis == "x" {
			v.SetXOffset(st.Offset.Value, false)
		} else {
			v.SetYOffset(st.Offset.Value, false)
		}
	case st.Region != nil:
		if st.Region.Axis == "x" {
			v.SetXVisibleRegion(st.Region.Value, false)
		} else {
			v.SetYVisibleRegion(st.Region.Value, false)
		}
	case st.Shift != nil:
		if st.Shift.Axis == "x" {
			v.ShiftXOffset(st.Shift.Value, false)
		} else {
			v.ShiftYOffset(st.Shift.Value, false)
		}
	case st.Zoom != nil:
		if st.Zoom.Value <= 0 {
			return "", fmt.Errorf("zoom factor must be positive, got %g", st.Zoom.Value)
		}
		if st.Zoom.Axis == "x" {
			v.XZoomAroundCursor(st.Zoom.Value)
		} else {
			v.YZoomAroundCursor(st.Zoom.Value)
		}

	case st.Log != nil:
		switch *st.Log {
		case "on":
			v.SetLogScale(true)
		case "off":
			v.SetLogScale(false)
		default:
			v.ToggleLogScale()
		}
	case st.Autoscale != nil:
		switch *st.Autoscale {
		case "on":
			v.SetYAutoScale(true, false)
		case "off":
			v.SetYAutoScale(false, false)
		default:
			v.YAutoScaleOnce(false)
		}
	case st.View != nil:
		mode, err := display.ParseViewMode(*st.View)
		if err != nil {
			return "", err
		}
		v.SetViewMode(mode)
	case st.ShowAll:
		v.ShowAll()
	case st.Begin:
		v.ToBegin()
	case st.Redraw:
		// the final update redraws
	}
	return "", nil
}

func (e *Executor) execSpectrum(cmd *SpectrumCmd) (string, error) {
	v := e.view
	switch {
	case cmd.Load != nil:
		h, err := e.load(cmd.Load.Path)
		if err != nil {
			return "", err
		}
		return e.addSpectrum(h, cmd.Load.Color), nil

	case cmd.Delete != nil:
		if !v.DeleteSpec(*cmd.Delete, false) {
			return "", fmt.Errorf("spectrum %d: %w", *cmd.Delete, ErrNoSuchObject)
		}
		return fmt.Sprintf("spectrum %d deleted", *cmd.Delete), nil

	case cmd.Clear:
		n := len(v.SpecIDs())
		v.DeleteAllSpecs(false)
		return fmt.Sprintf("%d spectra deleted", n), nil

	case cmd.Calibrate != nil:
		cal, err := spectrum.NewCalibration(cmd.Calibrate.Coeffs...)
		if err != nil {
			return "", err
		}
		if !v.SetSpecCal(cmd.Calibrate.ID, cal, false) {
			return "", fmt.Errorf("spectrum %d: %w", cmd.Calibrate.ID, ErrNoSuchObject)
		}
		return fmt.Sprintf("spectrum %d calibrated", cmd.Calibrate.ID), nil
	}
	return "", nil
}

// AddSpectrum shows h in the next palette color and returns a result line.
// The view is not redrawn.
func (e *Executor) AddSpectrum(h *spectrum.Histogram) string {
	return e.addSpectrum(h, nil)
}

func (e *Executor) addSpectrum(h *spectrum.Histogram, color *int) string {
	id := e.view.AddSpec(h, e.color(color), false)
	return fmt.Sprintf("spectrum %d: %s (%d bins)", id, h.Name, h.NBins())
}

func (e *Executor) execFunction(cmd *FunctionCmd) (string, error) {
	v := e.view
	switch {
	case cmd.Gauss != nil:
		g := cmd.Gauss
		if g.Sigma <= 0 {
			return "", fmt.Errorf("sigma must be positive, got %g", g.Sigma)
		}
		id := v.AddFunc(spectrum.Gaussian{Amp: g.Amp, Mean: g.Mean, Sigma: g.Sigma}, e.color(g.Color), false)
		return fmt.Sprintf("function %d: gauss", id), nil

	case cmd.Poly != nil:
		coeffs := append([]float64(nil), cmd.Poly.Coeffs...)
		id := v.AddFunc(spectrum.Polynomial{Coeffs: coeffs}, e.color(cmd.Poly.Color), false)
		return fmt.Sprintf("function %d: poly of degree %d", id, len(coeffs)-1), nil

	case cmd.Delete != nil:
		if !v.DeleteFunc(*cmd.Delete, false) {
			return "", fmt.Errorf("function %d: %w", *cmd.Delete, ErrNoSuchObject)
		}
		return fmt.Sprintf("function %d deleted", *cmd.Delete), nil

	case cmd.Clear:
		n := len(v.FuncIDs())
		v.DeleteAllFuncs(false)
		return fmt.Sprintf("%d functions deleted", n), nil
	}
	return "", nil
}

func (e *Executor) execMarker(cmd *MarkerCmd) (string, error) {
	v := e.view
	switch {
	case cmd.Add != nil:
		c := e.color(cmd.Add.Color)
		var label string
		if cmd.Add.Label != nil {
			label = *cmd.Add.Label
		}
		if cmd.Add.Axis == "x" {
			id := v.AddXMarker(cmd.Add.Pos, c, false)
			v.GetXMarker(id).Label = label
			return fmt.Sprintf("x marker %d at %g", id, cmd.Add.Pos), nil
		}
		id := v.AddYMarker(cmd.Add.Pos, c, false)
		v.GetYMarker(id).Label = label
		return fmt.Sprintf("y marker %d at %g", id, cmd.Add.Pos), nil

	case cmd.Delete != nil:
		ref := cmd.Delete
		var ok bool
		if ref.Axis == "x" {
			ok = v.DeleteXMarker(ref.ID, false)
		} else {
			ok = v.DeleteYMarker(ref.ID, false)
		}
		if !ok {
			return "", fmt.Errorf("%s marker %d: %w", ref.Axis, ref.ID, ErrNoSuchObject)
		}
		return fmt.Sprintf("%s marker %d deleted", ref.Axis, ref.ID), nil

	case cmd.Clear != nil:
		if *cmd.Clear == "x" {
			v.DeleteAllXMarkers(false)
		} else {
			v.DeleteAllYMarkers(false)
		}
		return fmt.Sprintf("%s markers cleared", *cmd.Clear), nil
	}
	return "", nil
}

// color returns the palette entry n, or the next one in turn when n is nil.
func (e *Executor) color(n *int) color.NRGBA {
	if n != nil {
		i := *n % len(e.palette)
		if i < 0 {
			i += len(e.palette)
		}
		return e.palette[i]
	}
	c := e.palette[e.nextColor%len(e.palette)]
	e.nextColor++
	return c
}
