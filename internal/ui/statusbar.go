package ui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/hdtv/hdtv/internal/display"
)

// statusMessage is the part showing command results and errors.
const statusMessage = 2

// statusWeights split the bar into position, scale and message parts.
var statusWeights = [3]float32{20, 10, 70}

type statusBar struct {
	parts [3]string
}

// SetText implements display.StatusBar.
func (s *statusBar) SetText(text string, part int) {
	if part >= 0 && part < len(s.parts) {
		s.parts[part] = text
	}
}

func (s *statusBar) Text(part int) string {
	if part >= 0 && part < len(s.parts) {
		return s.parts[part]
	}
	return ""
}

func (s *statusBar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(4), Bottom: unit.Dp(4)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, 0, len(s.parts))
		for i, text := range s.parts {
			children = append(children, layout.Flexed(statusWeights[i], func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(th, text)
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			}))
		}
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

var _ display.StatusBar = (*statusBar)(nil)
