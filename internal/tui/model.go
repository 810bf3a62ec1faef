// Package tui renders the universe in the terminal with interactive
// playback controls.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gilhooleyd/wasm-game-of-life/internal/stats"
	"github.com/gilhooleyd/wasm-game-of-life/pkg/life"
)

const (
	frameInterval   = time.Second / 30
	historyCapacity = 120
	maxTPS          = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model contains the universe, playback state, and UI context.
type Model struct {
	u       *life.Universe
	pattern life.Pattern
	seed    int64

	pacer    *Pacer
	detector *life.CycleDetector
	stats    *stats.Stats
	series   *stats.Series

	generation int
	running    bool
	still      bool
	showHelp   bool
	lastStep   time.Time
}

// NewModel initializes the playback state around a seeded universe.
func NewModel(u *life.Universe, pattern life.Pattern, seed int64, tps int) Model {
	return Model{
		u:        u,
		pattern:  pattern,
		seed:     seed,
		pacer:    NewPacer(tps),
		detector: life.NewCycleDetector(12),
		stats:    stats.New(),
		series:   stats.NewSeries(historyCapacity),
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the universe.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.step()
		case "r":
			m.reset()
		case "+", "=":
			m.pacer.SetTPS(min(m.pacer.TPS()*2, maxTPS))
		case "-", "_":
			m.pacer.SetTPS(max(m.pacer.TPS()/2, 1))
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		steps := m.pacer.Advance(time.Time(msg))
		if m.running {
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the universe by one generation.
func (m *Model) step() {
	now := time.Now()
	m.u.Tick()
	m.generation++

	var frame time.Duration
	if !m.lastStep.IsZero() {
		frame = now.Sub(m.lastStep)
	}
	m.lastStep = now

	pop := m.u.Population()
	m.stats.Update(m.generation, pop, frame)
	m.series.Push(float64(pop))

	m.still = m.detector.Stagnant(m.u)
	m.detector.Observe(m.u)
}

// reset restores the seeded starting state.
func (m *Model) reset() {
	m.pattern.Apply(m.u, m.seed)
	m.generation = 0
	m.still = false
	m.detector.Reset()
	m.series.Reset()
	m.stats = stats.New()
	m.lastStep = time.Time{}
}

func (m Model) status() string {
	switch {
	case m.u.Population() == 0:
		return "EXTINCT"
	case !m.running:
		return "PAUSED"
	case m.still:
		return "STILL"
	default:
		return "RUNNING"
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.u.Render())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GAME OF LIFE") + "\n")
	s.WriteString(fmt.Sprintf("%s\n\n", m.status()))

	if vals := m.series.Values(); len(vals) > 1 {
		chart := asciigraph.Plot(vals, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.generation)) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", m.u.Population())) + "\n")
	s.WriteString(labelStyle.Render("Average") + valueStyle.Render(fmt.Sprintf("%.1f", m.stats.AveragePopulation)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d tps", m.pacer.TPS())) + "\n")
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step R:Reset\n+/-:Speed Q:Quit ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  N        - Advance one generation   ║
║  R        - Reset to the seed        ║
║  +/=      - Double the speed         ║
║  -/_      - Halve the speed          ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
