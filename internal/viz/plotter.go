package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/plotlab/internal/config"
	"github.com/san-kum/plotlab/internal/input"
	"github.com/san-kum/plotlab/internal/plot"
)

// statusRows is the number of terminal rows below the canvas.
const statusRows = 2

// tuiMinStep keeps step-grid labels from overlapping at cell resolution.
const tuiMinStep = 16

// Model is the Bubble Tea model of the terminal plotter.
type Model struct {
	cfg    *config.Config
	scene  plot.Scene
	view   plot.Viewport
	ctrl   input.Controller
	canvas *Canvas
	theme  Theme
	policy string

	held          bool
	width, height int
	ready         bool
}

// NewModel plots scene with the terminal settings from cfg.
func NewModel(cfg *config.Config, scene plot.Scene) (*Model, error) {
	ctrl, err := input.New(input.ModeBoth, cfg.View.ScrollMult, cfg.TUI.PanStep)
	if err != nil {
		return nil, err
	}
	m := &Model{
		cfg:    cfg,
		scene:  scene,
		ctrl:   ctrl,
		theme:  GetTheme(cfg.TUI.Theme),
		policy: cfg.Grid.Policy,
		width:  80,
		height: 24,
	}
	m.applyTheme()
	m.resize(m.width, m.height)
	return m, nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var s input.State
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "left", "h":
		s.Keys = input.KeyLeft
	case "right", "l":
		s.Keys = input.KeyRight
	case "up", "k":
		s.Keys = input.KeyUp
	case "down", "j":
		s.Keys = input.KeyDown
	case "+", "=":
		s.Wheel = 1
	case "-", "_":
		s.Wheel = -1
	case "g":
		if m.policy == config.GridCount {
			m.policy = config.GridStep
		} else {
			m.policy = config.GridCount
		}
		m.applyTheme()
		return nil
	case "t":
		m.theme = nextTheme(m.theme.Name)
		m.applyTheme()
		return nil
	case "r", "0":
		m.view = m.startView()
		return nil
	default:
		return nil
	}
	m.ctrl.Apply(&m.view, s)
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	s := input.State{Mouse: plot.Vec2{X: float64(msg.X * 2), Y: float64(msg.Y * 4)}}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		s.Wheel = 1
	case msg.Button == tea.MouseButtonWheelDown:
		s.Wheel = -1
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.held = true
		s.Pressed, s.Down = true, true
	case msg.Action == tea.MouseActionMotion && m.held:
		s.Down = true
	case msg.Action == tea.MouseActionRelease:
		m.held = false
	default:
		return
	}
	m.ctrl.Apply(&m.view, s)
}

// resize rebuilds the canvas for a w x h terminal. The first size re-centres
// the origin; later ones keep it.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.canvas = NewCanvas(w, max(h-statusRows, 1))
	if !m.ready {
		m.view = m.startView()
		m.ready = true
	}
}

func (m *Model) startView() plot.Viewport {
	w, h := m.canvas.Size()
	return plot.NewViewport(w, h, m.cfg.TUI.Scale, m.cfg.TUI.Scale, m.cfg.View.MinScale)
}

func (m *Model) applyTheme() {
	m.scene.Background = m.theme.Background
	if m.policy == config.GridCount {
		g := plot.NewCountGrid(m.cfg.Grid.Cells)
		g.Style = m.theme.Grid
		m.scene.Grid = g
		return
	}
	m.scene.Grid = &plot.StepGrid{
		Style:   m.theme.Grid,
		MinStep: max(m.cfg.Grid.MinStep, tuiMinStep),
		Labels:  m.cfg.Grid.Labels,
	}
}

// Viewport returns the current view.
func (m *Model) Viewport() plot.Viewport { return m.view }

func (m *Model) View() string {
	m.scene.Render(m.canvas, m.view)

	accent := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	text := lipgloss.NewStyle().Foreground(m.theme.Text)

	var names []string
	for _, c := range m.scene.Curves {
		names = append(names, c.Name)
	}
	for _, e := range m.scene.Equations {
		names = append(names, e.Name)
	}

	var b strings.Builder
	b.WriteString(m.canvas.Render())
	b.WriteByte('\n')
	b.WriteString(accent.Render("plotlab") + "  " +
		text.Render(fmt.Sprintf("origin %.0f,%.0f  scale %.1f  grid %s  theme %s", m.view.Origin.X, m.view.Origin.Y, m.view.ScaleX, m.policy, m.theme.Name)) +
		"  " + muted.Render(strings.Join(names, " ")))
	b.WriteByte('\n')
	b.WriteString(keyHints([][2]string{
		{"←↑↓→", "pan"}, {"+/-", "zoom"}, {"drag", "pan"}, {"g", "grid"}, {"t", "theme"}, {"r", "reset"}, {"q", "quit"},
	}, m.theme))
	return b.String()
}

// Run starts the terminal plotter and blocks until the user quits.
func Run(cfg *config.Config, scene plot.Scene) error {
	m, err := NewModel(cfg, scene)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
