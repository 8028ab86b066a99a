package vis

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/airside-scheduler/internal/algo"
	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// Gantt draws one row per runway with a rectangle per flight, scaled to
// the schedule's time span. Delayed flights are tinted amber, flights
// pushed past the delay ceiling red.
type Gantt struct {
	result    *algo.CapacityResult
	atCeiling map[core.FlightID]bool
	min, max  time.Time
}

// NewGantt precomputes the time span of a schedule.
func NewGantt(res *algo.CapacityResult) *Gantt {
	g := &Gantt{result: res, atCeiling: make(map[core.FlightID]bool)}
	for _, f := range res.AtCeiling {
		g.atCeiling[f.ID] = true
	}
	for i, f := range res.Flights {
		if i == 0 || f.Start.Before(g.min) {
			g.min = f.Start
		}
		if i == 0 || f.End().After(g.max) {
			g.max = f.End()
		}
	}
	return g
}

var (
	rowBG      = color.NRGBA{R: 40, G: 42, B: 48, A: 255}
	onTimeFill = color.NRGBA{R: 100, G: 180, B: 255, A: 255}
	delayFill  = color.NRGBA{R: 255, G: 190, B: 80, A: 255}
	ceilFill   = color.NRGBA{R: 255, G: 110, B: 110, A: 255}
	labelGray  = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
)

// Layout renders the chart.
func (g *Gantt) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	const (
		labelWidth = 90
		rowHeight  = 36
		rowGap     = 6
		margin     = 12
	)

	span := g.max.Sub(g.min)
	if span <= 0 || g.result.NumRunways == 0 {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
	trackWidth := gtx.Constraints.Max.X - labelWidth - 2*margin

	y := margin
	for r := 1; r <= g.result.NumRunways; r++ {
		// Row background
		row := image.Rect(labelWidth+margin, y, labelWidth+margin+trackWidth, y+rowHeight)
		paint.FillShape(gtx.Ops, rowBG, clip.Rect(row).Op())

		// Runway label
		lbl := material.Label(th, 12, fmt.Sprintf("runway %d", r))
		lbl.Color = labelGray
		func() {
			defer clip.Rect(image.Rect(margin, y, labelWidth+margin, y+rowHeight)).Push(gtx.Ops).Pop()
			inset := layout.Inset{Left: unit.Dp(float32(margin)), Top: unit.Dp(float32(y + 10))}
			inset.Layout(gtx, lbl.Layout)
		}()

		for _, f := range g.result.ByRunway[r] {
			x0 := labelWidth + margin + scale(f.Start.Sub(g.min), span, trackWidth)
			x1 := labelWidth + margin + scale(f.End().Sub(g.min), span, trackWidth)
			if x1 <= x0 {
				x1 = x0 + 2
			}
			fill := onTimeFill
			if f.Delay > 0 {
				fill = delayFill
			}
			if g.atCeiling[f.ID] {
				fill = ceilFill
			}
			bar := image.Rect(x0, y+4, x1, y+rowHeight-4)
			paint.FillShape(gtx.Ops, fill, clip.Rect(bar).Op())
		}

		y += rowHeight + rowGap
	}

	// Time axis labels at the extremes.
	startLbl := material.Label(th, 11, g.min.Format("15:04"))
	startLbl.Color = labelGray
	layout.Inset{Left: unit.Dp(float32(labelWidth + margin)), Top: unit.Dp(float32(y))}.Layout(gtx, startLbl.Layout)

	endLbl := material.Label(th, 11, g.max.Format("15:04"))
	endLbl.Color = labelGray
	layout.Inset{Left: unit.Dp(float32(labelWidth + margin + trackWidth - 40)), Top: unit.Dp(float32(y))}.Layout(gtx, endLbl.Layout)

	g.layoutLegend(gtx, th, margin, y+24)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// layoutLegend draws one swatch and label per fill color.
func (g *Gantt) layoutLegend(gtx layout.Context, th *material.Theme, x, y int) {
	entries := []struct {
		fill color.NRGBA
		text string
	}{
		{onTimeFill, "on time"},
		{delayFill, "delayed"},
		{ceilFill, "past ceiling"},
	}
	for _, e := range entries {
		swatch := image.Rect(x, y+2, x+14, y+14)
		paint.FillShape(gtx.Ops, e.fill, clip.Rect(swatch).Op())

		lbl := material.Label(th, 11, e.text)
		lbl.Color = labelGray
		layout.Inset{Left: unit.Dp(float32(x + 20)), Top: unit.Dp(float32(y))}.Layout(gtx, lbl.Layout)
		x += 120
	}
}

// scale maps an offset within the span onto track pixels.
func scale(offset, span time.Duration, trackWidth int) int {
	return int(float64(offset) / float64(span) * float64(trackWidth))
}
