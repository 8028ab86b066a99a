// Package vis implements a Gio-based Gantt view of runway schedules.
package vis

import (
	"fmt"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/airside-scheduler/internal/algo"
	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// App renders a capacity-constrained schedule as a Gantt chart, one row
// per runway. Keys 1-4 switch the ordering policy, +/- change capacity.
type App struct {
	theme   *material.Theme
	flights []*core.Flight
	knobs   algo.CapacityKnobs

	policy     algo.OrderPolicy
	maxRunways int
	result     *algo.CapacityResult
	gantt      *Gantt
	err        error
}

// NewApp creates a viewer over a flight batch.
func NewApp(flights []*core.Flight, maxRunways int, knobs algo.CapacityKnobs) *App {
	a := &App{
		theme:      material.NewTheme(),
		flights:    flights,
		knobs:      knobs,
		policy:     algo.OrderPriority,
		maxRunways: maxRunways,
	}
	a.reschedule()
	return a
}

func (a *App) reschedule() {
	a.result, a.err = algo.CapacitySchedule(a.flights, a.maxRunways, a.policy, a.knobs)
	if a.err == nil {
		a.gantt = NewGantt(a.result)
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
					w.Invalidate()
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "1":
		a.policy = algo.OrderPriority
	case "2":
		a.policy = algo.OrderPassengers
	case "3":
		a.policy = algo.OrderDistance
	case "4":
		a.policy = algo.OrderHybrid
	case "+", "=":
		a.maxRunways++
	case "-":
		if a.maxRunways > 1 {
			a.maxRunways--
		}
	default:
		return
	}
	a.reschedule()
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutHeader(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if a.err != nil {
				lbl := material.Label(a.theme, 14, a.err.Error())
				lbl.Color = color.NRGBA{R: 255, G: 120, B: 120, A: 255}
				return lbl.Layout(gtx)
			}
			return a.gantt.Layout(gtx, a.theme)
		}),
	)
}

func (a *App) layoutHeader(gtx layout.Context) layout.Dimensions {
	title := fmt.Sprintf("policy: %s [1-4]   runways: %d [+/-]", a.policy, a.maxRunways)
	if a.err == nil {
		title = fmt.Sprintf("%s   on-time: %.1f%%   total delay: %v",
			title, a.result.OnTimeRatio*100, a.result.TotalDelay)
	}
	lbl := material.Label(a.theme, 14, title)
	lbl.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return lbl.Layout(gtx)
		})
}
