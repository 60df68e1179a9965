// Package tui drives a Scene from the terminal: a bubbletea viewer with a
// keyboard pointer, and a static report for headless runs.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/iburimskiy/joy/internal/game"
	"github.com/iburimskiy/joy/internal/stats"
)

const (
	frameRate   = 30
	pointerStep = 20 // steps across the scene per axis
	graphWidth  = 30
)

type tickMsg time.Time

// Model is the bubbletea model for the terminal viewer.
type Model struct {
	scene    *game.Scene
	history  *stats.History
	grid     *Grid
	px, py   float64
	running  bool
	showHelp bool
}

// NewModel starts with the pointer centred horizontally at the top, where
// the scene is liveliest.
func NewModel(scene *game.Scene, history *stats.History, cols, rows int) Model {
	w, h := scene.Size()
	return Model{
		scene:    scene,
		history:  history,
		grid:     NewGrid(cols, rows, w, h),
		px:       w / 2,
		running:  true,
		showHelp: true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	w, h := m.scene.Size()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.py = clampPointer(m.py-h/pointerStep, h)
		case "down", "j":
			m.py = clampPointer(m.py+h/pointerStep, h)
		case "left", "h":
			m.px = clampPointer(m.px-w/pointerStep, w)
		case "right", "l":
			m.px = clampPointer(m.px+w/pointerStep, w)
		case " ", "enter":
			m.scene.Click()
			m.grid.Rescale(w, h)
		case "p":
			m.running = !m.running
		case "r":
			m.scene.Resize(w, h)
			m.grid.Rescale(w, h)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// step advances one frame and paints it onto the grid.
func (m Model) step() {
	m.scene.Tick(m.px, m.py)
	m.history.Record(float64(m.scene.Len()))
	m.scene.Draw(m.grid)
}

func clampPointer(v, limit float64) float64 {
	return game.ClampedLinearMap(v, 0, limit, 0, limit)
}

func (m Model) View() string {
	canvas := canvasStyle.Render(m.grid.String())

	p := m.scene.Params()
	var s strings.Builder
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(headerStyle.Render("JOY  "+status) + "\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", p.Tick))
	row("Particles", fmt.Sprintf("%d / %d", m.scene.Len(), m.scene.Settings().MaxParticles))
	row("Speed", fmt.Sprintf("%.2fx", p.SpeedMultiplier))
	row("Spawn", fmt.Sprintf("%d per %d ticks", p.SpawnRate, m.scene.Settings().SpawnInterval))
	row("Bounce", fmt.Sprintf("%.2f", p.Bounciness))
	row("Palette", m.scene.Palette().Name)
	row("Pointer", fmt.Sprintf("%.0f, %.0f", m.px, m.py))
	if p.Burst > 0 {
		s.WriteString(burstStyle.Render(fmt.Sprintf("BURST %d", p.Burst)) + "\n")
	}

	if data := m.history.Snapshot(graphWidth * 4); len(data) > 1 {
		chart := asciigraph.Plot(data, asciigraph.Height(5), asciigraph.Width(graphWidth), asciigraph.Caption("population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.showHelp {
		s.WriteString(helpStyle.Render("arrows/hjkl: pointer  space: burst\np: pause  r: respawn  ?: help  q: quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(s.String()))
}

// Run blocks in the terminal viewer until the user quits.
func Run(scene *game.Scene, history *stats.History, cols, rows int) error {
	_, err := tea.NewProgram(NewModel(scene, history, cols, rows), tea.WithAltScreen()).Run()
	return err
}
