package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hdtv/hdtv/internal/display"
	"github.com/hdtv/hdtv/pkg/spectrum"
)

func mustParse(t *testing.T, input string) *Script {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	script, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", input, err)
	}
	return script
}

func single(t *testing.T, input string) *Statement {
	t.Helper()
	script := mustParse(t, input)
	if len(script.Statements) != 1 {
		t.Fatalf("%q: got %d statements, want 1", input, len(script.Statements))
	}
	return script.Statements[0]
}

func TestParseSpectrumCommands(t *testing.T) {
	st := single(t, "spectrum load co60.spc color 2")
	if st.Spectrum == nil || st.Spectrum.Load == nil {
		t.Fatalf("not a load statement: %+v", st)
	}
	if st.Spectrum.Load.Path != "co60.spc" {
		t.Errorf("path = %q", st.Spectrum.Load.Path)
	}
	if c := st.Spectrum.Load.Color; c == nil || *c != 2 {
		t.Errorf("color = %v", c)
	}

	paths := map[string]string{
		"spectrum load data/x.spc":        "data/x.spc",
		`spectrum load "my file.spc"`:     "my file.spc",
		"spectrum load ~/spectra/152eu.1": "~/spectra/152eu.1",
		"spectrum load run7":              "run7",
		"spectrum load 152eu":             "152eu",
		"spectrum load 60co-2":            "60co-2",
	}
	for in, want := range paths {
		st := single(t, in)
		if st.Spectrum.Load.Path != want {
			t.Errorf("%q: path = %q, want %q", in, st.Spectrum.Load.Path, want)
		}
		if st.Spectrum.Load.Color != nil {
			t.Errorf("%q: unexpected color", in)
		}
	}

	st = single(t, "spectrum calibrate 1 0.5 2 1e-4")
	cal := st.Spectrum.Calibrate
	if cal == nil || cal.ID != 1 || !reflect.DeepEqual(cal.Coeffs, []float64{0.5, 2, 1e-4}) {
		t.Errorf("calibrate = %+v", cal)
	}

	if st := single(t, "spectrum delete 3"); st.Spectrum.Delete == nil || *st.Spectrum.Delete != 3 {
		t.Errorf("delete = %+v", st.Spectrum)
	}
	if st := single(t, "spectrum clear"); !st.Spectrum.Clear {
		t.Errorf("clear not set")
	}
}

func TestParseFunctionAndMarkerCommands(t *testing.T) {
	st := single(t, "function gauss 100 50.5 2 color 1")
	g := st.Function.Gauss
	if g == nil || g.Amp != 100 || g.Mean != 50.5 || g.Sigma != 2 || g.Color == nil || *g.Color != 1 {
		t.Errorf("gauss = %+v", g)
	}

	st = single(t, "function poly 1 -0.5 .25")
	if p := st.Function.Poly; p == nil || !reflect.DeepEqual(p.Coeffs, []float64{1, -0.5, 0.25}) {
		t.Errorf("poly = %+v", st.Function.Poly)
	}

	st = single(t, "marker y 12.5 color 4")
	if m := st.Marker.Add; m == nil || m.Axis != "y" || m.Pos != 12.5 || *m.Color != 4 {
		t.Errorf("marker add = %+v", st.Marker.Add)
	}
	st = single(t, `marker x 1332.5 color 2 label "Co-60 peak"`)
	if m := st.Marker.Add; m == nil || m.Pos != 1332.5 || *m.Color != 2 || m.Label == nil || *m.Label != "Co-60 peak" {
		t.Errorf("labelled marker = %+v", st.Marker.Add)
	}
	st = single(t, "marker y 40 label bg")
	if m := st.Marker.Add; m == nil || m.Color != nil || m.Label == nil || *m.Label != "bg" {
		t.Errorf("labelled marker = %+v", st.Marker.Add)
	}
	st = single(t, "marker delete x 2")
	if r := st.Marker.Delete; r == nil || r.Axis != "x" || r.ID != 2 {
		t.Errorf("marker delete = %+v", st.Marker.Delete)
	}
	st = single(t, "marker clear y")
	if st.Marker.Clear == nil || *st.Marker.Clear != "y" {
		t.Errorf("marker clear = %+v", st.Marker)
	}
}

func TestParseViewCommands(t *testing.T) {
	tests := []struct {
		in    string
		check func(*Statement) bool
	}{
		{"offset x -20", func(s *Statement) bool { return s.Offset != nil && s.Offset.Axis == "x" && s.Offset.Value == -20 }},
		{"region y 500", func(s *Statement) bool { return s.Region != nil && s.Region.Axis == "y" && s.Region.Value == 500 }},
		{"shift x 0.1", func(s *Statement) bool { return s.Shift != nil && s.Shift.Value == 0.1 }},
		{"zoom y 2", func(s *Statement) bool { return s.Zoom != nil && s.Zoom.Axis == "y" && s.Zoom.Value == 2 }},
		{"log toggle", func(s *Statement) bool { return s.Log != nil && *s.Log == "toggle" }},
		{"autoscale once", func(s *Statement) bool { return s.Autoscale != nil && *s.Autoscale == "once" }},
		{"view dotted", func(s *Statement) bool { return s.View != nil && *s.View == "dotted" }},
		{"show all", func(s *Statement) bool { return s.ShowAll }},
		{"begin", func(s *Statement) bool { return s.Begin }},
		{"redraw", func(s *Statement) bool { return s.Redraw }},
	}
	for _, tt := range tests {
		if st := single(t, tt.in); !tt.check(st) {
			t.Errorf("%q parsed as %+v", tt.in, st)
		}
	}
}

func TestParseScript(t *testing.T) {
	script := mustParse(t, "log on; view solid\n\n# a comment\n  begin  # trailing\n\n")
	if len(script.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(script.Statements))
	}
	if got := script.Statements[2].Pos.Line; got != 4 {
		t.Errorf("begin on line %d, want 4", got)
	}

	if script := mustParse(t, ""); len(script.Statements) != 0 {
		t.Errorf("empty input gave %d statements", len(script.Statements))
	}
}

func TestParseErrors(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	for _, in := range []string{
		"frobnicate",
		"marker z 1",
		"spectrum delete 1.5",
		"log maybe",
		"function gauss 1 2",
	} {
		if _, err := p.ParseString(in); err == nil {
			t.Errorf("%q parsed without error", in)
		} else if !strings.HasPrefix(err.Error(), "parse error") {
			t.Errorf("%q: error %q lacks prefix", in, err)
		}
	}
}

func newTestExecutor(t *testing.T) (*Executor, *display.Viewport) {
	t.Helper()
	v := display.NewViewport(nil)
	load := func(path string) (*spectrum.Histogram, error) {
		if path == "missing.spc" {
			return nil, os.ErrNotExist
		}
		return spectrum.NewHistogram(path, []float64{1, 2, 3, 4}), nil
	}
	e, err := NewExecutor(v, WithLoader(load))
	if err != nil {
		t.Fatalf("NewExecutor failed: %v", err)
	}
	return e, v
}

func TestExecutorSpectra(t *testing.T) {
	e, v := newTestExecutor(t)

	out, err := e.Execute("spectrum load a.spc")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out != "spectrum 0: a.spc (4 bins)" {
		t.Errorf("load output = %q", out)
	}
	if _, err := e.Execute("spectrum load b.spc color 3"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := e.Execute("spectrum load c.spc color -1"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := v.GetSpec(0).Color(); got != display.Palette[0] {
		t.Errorf("first spectrum color = %v", got)
	}
	if got := v.GetSpec(1).Color(); got != display.Palette[3] {
		t.Errorf("explicit color = %v", got)
	}
	if got := v.GetSpec(2).Color(); got != display.Palette[len(display.Palette)-1] {
		t.Errorf("negative color index = %v", got)
	}

	if _, err := e.Execute("spectrum calibrate 1 10 2"); err != nil {
		t.Fatalf("calibrate failed: %v", err)
	}
	if got := v.GetSpec(1).Ch2E(1); got != 12 {
		t.Errorf("calibrated Ch2E(1) = %v, want 12", got)
	}
	if _, err := e.Execute("spectrum calibrate 1 10 0"); !errors.Is(err, spectrum.ErrBadCalibration) {
		t.Errorf("zero slope calibration error = %v", err)
	}

	if _, err := e.Execute("spectrum delete 7"); !errors.Is(err, ErrNoSuchObject) {
		t.Errorf("delete of unknown id error = %v", err)
	}
	if _, err := e.Execute("spectrum load missing.spc"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("load error = %v", err)
	}

	if _, err := e.Execute("spectrum delete 0"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if out, _ := e.Execute("spectrum clear"); out != "2 spectra deleted" {
		t.Errorf("clear output = %q", out)
	}
	if ids := v.SpecIDs(); len(ids) != 0 {
		t.Errorf("spectra left after clear: %v", ids)
	}
}

func TestExecutorFunctionsAndMarkers(t *testing.T) {
	e, v := newTestExecutor(t)

	if _, err := e.Execute("function gauss 100 50 2; function poly 1 0.5"); err != nil {
		t.Fatalf("functions failed: %v", err)
	}
	if got := v.FuncIDs(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("function ids = %v", got)
	}
	if got := v.GetFunc(1).Value(4); got != 3 {
		t.Errorf("poly value at 4 = %v, want 3", got)
	}
	if _, err := e.Execute("function gauss 1 2 0"); err == nil {
		t.Errorf("zero sigma accepted")
	}

	script := "marker x 10\nmarker x 20\nmarker delete x 0\nmarker x 30\nmarker y 5"
	if _, err := e.Execute(script); err != nil {
		t.Fatalf("markers failed: %v", err)
	}
	if got := v.XMarkerIDs(); !reflect.DeepEqual(got, []int{1, 0}) {
		t.Errorf("x marker ids = %v", got)
	}
	if m := v.GetXMarker(0); m == nil || m.E != 30 {
		t.Errorf("recycled marker = %+v", m)
	}
	if m := v.GetYMarker(0); m == nil || m.C != 5 {
		t.Errorf("y marker = %+v", m)
	}

	if _, err := e.Execute(`marker x 40 label "K-40"; marker y 7 label bg`); err != nil {
		t.Fatalf("labelled markers failed: %v", err)
	}
	if m := v.GetXMarker(2); m == nil || m.Label != "K-40" {
		t.Errorf("x marker label = %+v", m)
	}
	if m := v.GetYMarker(1); m == nil || m.Label != "bg" {
		t.Errorf("y marker label = %+v", m)
	}
	if m := v.GetXMarker(1); m == nil || m.Label != "" {
		t.Errorf("unlabelled marker = %+v", m)
	}

	if _, err := e.Execute("marker clear x"); err != nil {
		t.Fatalf("marker clear failed: %v", err)
	}
	if len(v.XMarkerIDs()) != 0 || len(v.YMarkerIDs()) != 2 {
		t.Errorf("after clear x: x=%v y=%v", v.XMarkerIDs(), v.YMarkerIDs())
	}
}

func TestExecutorView(t *testing.T) {
	e, v := newTestExecutor(t)

	if _, err := e.Execute("region x 200; offset x 50; shift x 0.5"); err != nil {
		t.Fatalf("x view failed: %v", err)
	}
	if v.XVisibleRegion() != 200 || v.XOffset() != 150 {
		t.Errorf("x view = %v + %v, want 150 + 200", v.XOffset(), v.XVisibleRegion())
	}

	if _, err := e.Execute("zoom x 2"); err != nil {
		t.Fatalf("zoom failed: %v", err)
	}
	if v.XVisibleRegion() != 100 {
		t.Errorf("zoomed region = %v, want 100", v.XVisibleRegion())
	}
	if _, err := e.Execute("zoom x 0"); err == nil {
		t.Errorf("zero zoom factor accepted")
	}

	if _, err := e.Execute("log on; view solid; region y 500"); err != nil {
		t.Fatalf("y view failed: %v", err)
	}
	if !v.LogScale() || v.ViewMode() != display.ViewSolid {
		t.Errorf("log = %v, mode = %v", v.LogScale(), v.ViewMode())
	}
	if v.YAutoScale() || v.YVisibleRegion() != 500 {
		t.Errorf("y region = %v, auto = %v", v.YVisibleRegion(), v.YAutoScale())
	}

	if _, err := e.Execute("log toggle; autoscale on; begin"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if v.LogScale() || !v.YAutoScale() || v.XOffset() != 0 {
		t.Errorf("log = %v, auto = %v, offset = %v", v.LogScale(), v.YAutoScale(), v.XOffset())
	}
}

func TestExecutorStopsAtFirstError(t *testing.T) {
	e, v := newTestExecutor(t)

	out, err := e.Execute("marker x 1\nspectrum delete 3\nmarker x 2")
	if !errors.Is(err, ErrNoSuchObject) {
		t.Fatalf("error = %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("error %q lacks the line number", err)
	}
	if out != "x marker 0 at 1" {
		t.Errorf("output = %q", out)
	}
	if got := v.XMarkerIDs(); len(got) != 1 {
		t.Errorf("x markers = %v, want only the first", got)
	}
}

func TestExecutorRunFile(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "co60.spc")
	if err := os.WriteFile(spec, []byte("# counts\n10\n20\n30\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	script := filepath.Join(dir, "view.hdtv")
	body := fmt.Sprintf("spectrum load %q\nshow all\n", spec)
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	v := display.NewViewport(nil)
	e, err := NewExecutor(v)
	if err != nil {
		t.Fatalf("NewExecutor failed: %v", err)
	}
	out, err := e.RunFile(script)
	if err != nil {
		t.Fatalf("RunFile failed: %v", err)
	}
	if out != "spectrum 0: co60.spc (3 bins)" {
		t.Errorf("output = %q", out)
	}
	if v.XOffset() != 0 || v.XVisibleRegion() != 3 {
		t.Errorf("show all gave %v + %v, want 0 + 3", v.XOffset(), v.XVisibleRegion())
	}

	if _, err := e.RunFile(filepath.Join(dir, "nope")); err == nil {
		t.Errorf("RunFile of a missing file succeeded")
	}
}
