// Package tui implements the optional live dashboard mode: the same
// sequential sampling cycles as the plain console loop, rendered as
// full-screen percentage gauges instead of one line per cycle. Only the
// current record is shown; no sample history is retained.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sysmon/internal/config"
	apperrors "github.com/agbru/sysmon/internal/errors"
	"github.com/agbru/sysmon/internal/sampler"
)

// TickMsg requests the next sampling cycle.
type TickMsg time.Time

// SampleMsg carries the record produced by one cycle.
type SampleMsg struct {
	Record sampler.Record
}

// ContextCancelledMsg reports external cancellation (e.g., SIGTERM).
type ContextCancelledMsg struct{}

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Quit  key.Binding
	Pause key.Binding
}

// DefaultKeyMap returns the standard dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	}
}

// Model is the root bubbletea model for the live dashboard. The sampler's
// baseline is still touched once per cycle only: each tick schedules exactly
// one sample command, so cycles remain strictly sequential.
type Model struct {
	sampler  *sampler.Sampler
	sink     sampler.Emitter // optional CSV log, nil when logging is disabled
	interval time.Duration
	count    int

	cpuBar  progress.Model
	memBar  progress.Model
	diskBar progress.Model

	keymap KeyMap
	ctx    context.Context

	record   sampler.Record
	sampled  bool
	taken    int
	paused   bool
	done     bool
	width    int
	exitCode int
}

// NewModel creates a dashboard model driving the given sampler.
func NewModel(ctx context.Context, s *sampler.Sampler, sink sampler.Emitter, cfg config.AppConfig) Model {
	newBar := func() progress.Model {
		bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
		bar.Width = 40
		return bar
	}
	return Model{
		sampler:  s,
		sink:     sink,
		interval: cfg.Interval,
		count:    cfg.Count,
		cpuBar:   newBar(),
		memBar:   newBar(),
		diskBar:  newBar(),
		keymap:   DefaultKeyMap(),
		ctx:      ctx,
		exitCode: apperrors.ExitSuccess,
	}
}

// Init samples immediately and starts watching for external cancellation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(sampleCmd(m.sampler, m.sink), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Pause):
			if !m.done {
				m.paused = !m.paused
			}
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 24
		if barWidth < 10 {
			barWidth = 10
		}
		m.cpuBar.Width = barWidth
		m.memBar.Width = barWidth
		m.diskBar.Width = barWidth
		return m, nil

	case SampleMsg:
		m.record = msg.Record
		m.sampled = true
		m.taken++
		if m.count > 0 && m.taken >= m.count {
			m.done = true
			return m, nil
		}
		return m, tickCmd(m.interval)

	case TickMsg:
		if m.done {
			return m, nil
		}
		if m.paused {
			return m, tickCmd(m.interval)
		}
		return m, sampleCmd(m.sampler, m.sink)

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	title := titleStyle.Render("sysmon")
	status := ""
	switch {
	case m.done:
		status = statusDoneStyle.Render(fmt.Sprintf("done (%d cycles)", m.taken))
	case m.paused:
		status = statusPausedStyle.Render("paused")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", status)

	body := "waiting for first sample..."
	if m.sampled {
		body = lipgloss.JoinVertical(lipgloss.Left,
			timestampStyle.Render(m.record.Timestamp.Format(sampler.TimestampLayout)),
			"",
			m.gaugeRow("CPU", m.cpuBar, m.record.CPUPercent),
			m.gaugeRow("Memory", m.memBar, m.record.MemoryPercent),
			m.gaugeRow("Disk", m.diskBar, m.record.DiskPercent),
		)
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		footerKeyStyle.Render("q"), footerDescStyle.Render(" quit  "),
		footerKeyStyle.Render("p"), footerDescStyle.Render(" pause"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(body),
		footer,
	)
}

// gaugeRow renders one labeled percentage gauge.
func (m Model) gaugeRow(label string, bar progress.Model, pct float64) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		metricLabelStyle.Render(label),
		bar.ViewAs(pct/100.0),
		metricValueStyle.Render(fmt.Sprintf(" %5.1f%%", pct)),
	)
}

// Run is the public entry point for the dashboard mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, s *sampler.Sampler, sink sampler.Emitter, cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, s, sink, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// sampleCmd runs one sampling cycle and forwards the record to the sink.
func sampleCmd(s *sampler.Sampler, sink sampler.Emitter) tea.Cmd {
	return func() tea.Msg {
		rec := s.Cycle()
		if sink != nil {
			// Sink failures are absorbed; the dashboard keeps rendering.
			_ = sink.Emit(rec)
		}
		return SampleMsg{Record: rec}
	}
}

// tickCmd schedules the next cycle after the sampling interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd converts external cancellation into a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{}
	}
}
