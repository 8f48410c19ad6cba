package command

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes viewer commands. Statements end at a newline or ';'.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Sep", Pattern: `[\n;][\s;]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	// a trailing word boundary keeps "60co.spc" out of Number
	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?\b`},
	// file names containing a dot or a slash
	{Name: "Path", Pattern: `[\w~.\-]*[/\\.][\w~./\\\-]*`},
	// bare words, including file names like 152eu
	{Name: "Ident", Pattern: `\w[\w\-]*`},
})

// Script is a sequence of statements.
type Script struct {
	Statements []*Statement `(@@ | Sep)*`
}

// Statement is one viewer command.
type Statement struct {
	Pos lexer.Position

	Spectrum  *SpectrumCmd `  "spectrum" @@`
	Function  *FunctionCmd `| "function" @@`
	Marker    *MarkerCmd   `| "marker" @@`
	Offset    *AxisValue   `| "offset" @@`
	Region    *AxisValue   `| "region" @@`
	Shift     *AxisValue   `| "shift" @@`
	Zoom      *AxisValue   `| "zoom" @@`
	Log       *string      `| "log" @("on" | "off" | "toggle")`
	Autoscale *string      `| "autoscale" @("on" | "off" | "once")`
	View      *string      `| "view" @("solid" | "hollow" | "dotted")`
	ShowAll   bool         `| @("show" "all")`
	Begin     bool         `| @"begin"`
	Redraw    bool         `| @"redraw"`
}

type SpectrumCmd struct {
	Load      *LoadArgs      `  "load" @@`
	Delete    *int           `| "delete" @Number`
	Clear     bool           `| @"clear"`
	Calibrate *CalibrateArgs `| "calibrate" @@`
}

type LoadArgs struct {
	Path  string `@(String | Path | Ident)`
	Color *int   `("color" @Number)?`
}

type CalibrateArgs struct {
	ID     int       `@Number`
	Coeffs []float64 `@Number+`
}

type FunctionCmd struct {
	Gauss  *GaussArgs `  "gauss" @@`
	Poly   *PolyArgs  `| "poly" @@`
	Delete *int       `| "delete" @Number`
	Clear  bool       `| @"clear"`
}

type GaussArgs struct {
	Amp   float64 `@Number`
	Mean  float64 `@Number`
	Sigma float64 `@Number`
	Color *int    `("color" @Number)?`
}

type PolyArgs struct {
	Coeffs []float64 `@Number+`
	Color  *int      `("color" @Number)?`
}

type MarkerCmd struct {
	Delete *MarkerRef `  "delete" @@`
	Clear  *string    `| "clear" @("x" | "y")`
	Add    *MarkerAdd `| @@`
}

type MarkerRef struct {
	Axis string `@("x" | "y")`
	ID   int    `@Number`
}

type MarkerAdd struct {
	Axis  string  `@("x" | "y")`
	Pos   float64 `@Number`
	Color *int    `("color" @Number)?`
	Label *string `("label" @(String | Ident))?`
}

// AxisValue is an axis name followed by a number.
type AxisValue struct {
	Axis  string  `@("x" | "y")`
	Value float64 `@Number`
}
