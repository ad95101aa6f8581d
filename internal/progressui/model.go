// Package progressui renders live progress for a running wipe operation,
// either as an inline bubbletea view or as plain line output when stdout is
// not a terminal.
package progressui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/winshred/internal/wipe"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type progressMsg wipe.Progress

type doneMsg struct {
	result *wipe.Result
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for a single wipe operation.
type Model struct {
	title      string
	bar        progress.Model
	last       wipe.Progress
	result     *wipe.Result
	cancel     func()
	updates    <-chan wipe.Progress
	done       <-chan *wipe.Result
	width      int
	started    time.Time
	cancelling bool
}

func newModel(title string, updates <-chan wipe.Progress, done <-chan *wipe.Result, cancel func()) Model {
	return Model{
		title:   title,
		bar:     progress.New(progress.WithDefaultGradient()),
		updates: updates,
		done:    done,
		cancel:  cancel,
		width:   80,
		started: time.Now(),
	}
}

// waitForEvent blocks on the worker's channels. The updates channel is
// closed when the operation finishes, after which the result arrives.
func (m Model) waitForEvent() tea.Cmd {
	updates, done := m.updates, m.done
	return func() tea.Msg {
		select {
		case p, ok := <-updates:
			if ok {
				return progressMsg(p)
			}
			return doneMsg{result: <-done}
		case r := <-done:
			return doneMsg{result: r}
		}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// Cooperative cancel: the engine finishes its current block and
			// delivers a final result, which quits the view.
			m.cancelling = true
			m.cancel()
		}
		return m, nil

	case progressMsg:
		m.last = wipe.Progress(msg)
		return m, tea.Batch(m.bar.SetPercent(m.last.Fraction), m.waitForEvent())

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case doneMsg:
		m.result = msg.result
		return m, tea.Quit
	}

	return m, nil
}
