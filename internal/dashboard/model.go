package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/yoinky/internal/layout"
	"github.com/rileyhilliard/yoinky/internal/metrics"
)

// State is where the refresh cycle currently is.
type State int

const (
	StateIdle State = iota
	StateRendering
	StateWaiting
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateWaiting:
		return "waiting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Sampler produces one metrics frame per call.
type Sampler interface {
	Sample(ctx context.Context) metrics.Frame
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx     context.Context
	sampler Sampler
	clock   TickClock
	now     func() time.Time
	keys    KeyMap
	quitKey string
	state   State

	width  int
	height int

	// frame is the last sample, kept so a resize can repaint it
	frame *metrics.Frame
	// screen is what was last painted
	screen string
	// awaitingSize is set when a tick came due before the terminal size was known
	awaitingSize bool
	// wait is the delay the last tick scheduled
	wait time.Duration
}

// tickMsg signals that a refresh may be due.
type tickMsg time.Time

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now, so tests can control elapsed time.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithQuitKey sets the key that exits, in addition to ctrl+c.
func WithQuitKey(k string) Option {
	return func(m *Model) {
		m.quitKey = k
		m.keys = NewKeyMap(k)
	}
}

// WithContext sets the context handed to the sampler.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// NewModel creates a dashboard that samples every interval.
func NewModel(sampler Sampler, interval time.Duration, opts ...Option) Model {
	m := Model{
		ctx:     context.Background(),
		sampler: sampler,
		clock:   TickClock{Interval: interval},
		now:     time.Now,
		keys:    NewKeyMap(DefaultQuitKey),
		quitKey: DefaultQuitKey,
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current refresh cycle state.
func (m Model) State() State {
	return m.state
}

// Init fires the first tick immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(m.now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateTerminated || !m.sized() {
			return m, nil
		}
		if m.awaitingSize {
			m.awaitingSize = false
			return m, m.tickCmd(0)
		}
		if m.frame != nil {
			m.paint()
		}

	case tickMsg:
		if m.state == StateTerminated {
			return m, nil
		}

		now := m.now()
		if !m.clock.Due(now) {
			m.state = StateWaiting
			m.wait = m.clock.Wait(now)
			return m, m.tickCmd(m.wait)
		}

		// Nothing to draw into yet; the first WindowSizeMsg restarts ticking
		if !m.sized() {
			m.state = StateIdle
			m.awaitingSize = true
			return m, nil
		}

		m.clock.Reset(now)
		m.state = StateIdle
		m.render()

		m.state = StateWaiting
		m.wait = m.clock.Wait(m.now())
		return m, m.tickCmd(m.wait)
	}

	return m, nil
}

// render samples and paints a new frame.
func (m *Model) render() {
	m.state = StateRendering
	frame := m.sampler.Sample(m.ctx)
	m.frame = &frame
	m.paint()
}

// paint composes the last frame at the current terminal size.
func (m *Model) paint() {
	area := layout.Rect{Width: m.width, Height: m.height}
	m.screen = Paint(Compose(*m.frame, area, ComposeOptions{QuitKey: m.quitKey}))
}

func (m Model) sized() bool {
	return m.width > 0 && m.height > 0
}

// View returns the screen painted on the last tick.
func (m Model) View() string {
	if m.state == StateTerminated {
		return ""
	}
	return m.screen
}

// tickCmd returns a command that sends a tick after d.
func (m Model) tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
