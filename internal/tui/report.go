package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/iburimskiy/joy/internal/game"
	"github.com/iburimskiy/joy/internal/stats"
)

// Report writes a summary of a headless run: final parameters and a chart
// of the recorded population.
func Report(w io.Writer, scene *game.Scene, history *stats.History) error {
	p := scene.Params()
	var s strings.Builder
	s.WriteString(headerStyle.Render("JOY SIMULATION") + "\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Ticks", fmt.Sprintf("%d", p.Tick))
	row("Particles", fmt.Sprintf("%d", scene.Len()))
	row("Peak", fmt.Sprintf("%.0f", history.Max()))
	row("Speed", fmt.Sprintf("%.2fx", p.SpeedMultiplier))
	row("Bounce", fmt.Sprintf("%.2f", p.Bounciness))
	row("Palette", scene.Palette().Name)

	if data := history.Snapshot(history.Len()); len(data) > 1 {
		chart := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("population per tick"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	_, err := io.WriteString(w, s.String())
	return err
}
