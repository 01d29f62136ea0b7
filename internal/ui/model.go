package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/theme"
)

// Engine is the part of the timer engine driven by the view
type Engine interface {
	AcknowledgeRecovery(ctx context.Context)
	AcknowledgeWarning(ctx context.Context)
	ClearError(ctx context.Context)
	Recovery() *domain.RecoveryInfo
	Reset(ctx context.Context)
	Resume(ctx context.Context)
	Start(ctx context.Context, matterID, notes string) error
	State() domain.TimerState
	Stop(ctx context.Context, notes string) error
	UpdateMatter(ctx context.Context, matterID string)
	UpdateNotes(ctx context.Context, notes string)
	Warning() *domain.WarningInfo
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeEditMatter
	modeEditNotes
)

// Model is the bubbletea model of the timer view
type Model struct {
	ctx      context.Context
	engine   Engine
	help     help.Model
	input    textinput.Model
	keys     KeyMap
	lastErr  string
	mode     inputMode
	showHelp bool
	state    domain.TimerState
	subtitle string
	width    int
}

// NewModel creates the timer view for an engine. subtitle identifies the
// context, e.g. the SSH user.
func NewModel(ctx context.Context, engine Engine, subtitle string) Model {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 50

	return Model{
		ctx:      ctx,
		engine:   engine,
		help:     help.New(),
		input:    input,
		keys:     NewKeyMap(),
		state:    engine.State(),
		subtitle: subtitle,
		width:    80,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case StateChangedMsg:
		m.state = msg.State
		return m, nil

	case tea.ResumeMsg:
		logging.Logger.Debug("Program resumed, recomputing elapsed time")
		m.engine.Resume(m.ctx)
		m.state = m.engine.State()
		return m, nil

	case actionDoneMsg:
		m.lastErr = ""
		if msg.err != nil {
			m.lastErr = msg.err.Error()
		}
		m.state = m.engine.State()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Dismiss):
		m.dismiss()

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggle()

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset(m.ctx)
		m.lastErr = ""
		m.state = m.engine.State()

	case key.Matches(msg, m.keys.EditNotes):
		m.mode = modeEditNotes
		m.input.Placeholder = "what are you working on?"
		m.input.SetValue(m.state.Notes)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.EditMatter):
		m.mode = modeEditMatter
		m.input.Placeholder = "matter id"
		m.input.SetValue(m.state.SelectedMatterID)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.AcceptSuggestion):
		if m.state.SuggestedMatterID != "" && !m.state.IsRunning {
			m.engine.UpdateMatter(m.ctx, m.state.SuggestedMatterID)
			m.state = m.engine.State()
		}
	}
	return m, nil
}

// dismiss closes the most prominent notice: recovery, then warning, then error
func (m *Model) dismiss() {
	switch {
	case m.hasRecoveryNotice():
		m.engine.AcknowledgeRecovery(m.ctx)
	case m.engine.Warning() != nil:
		m.engine.AcknowledgeWarning(m.ctx)
	case m.state.Error != "" || m.lastErr != "":
		m.engine.ClearError(m.ctx)
		m.lastErr = ""
	}
	m.state = m.engine.State()
}

func (m Model) hasRecoveryNotice() bool {
	info := m.engine.Recovery()
	return info != nil && info.HasSignificantGap
}

// toggle starts or stops the session off the update loop
func (m Model) toggle() tea.Cmd {
	if m.state.Status == domain.StatusStopping {
		return nil
	}
	ctx, engine := m.ctx, m.engine
	if m.state.IsRunning {
		return func() tea.Msg {
			return actionDoneMsg{err: engine.Stop(ctx, "")}
		}
	}
	return func() tea.Msg {
		return actionDoneMsg{err: engine.Start(ctx, "", "")}
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case modeEditNotes:
			m.engine.UpdateNotes(m.ctx, value)
		case modeEditMatter:
			m.engine.UpdateMatter(m.ctx, value)
		}
		m.mode = modeNormal
		m.input.Blur()
		m.state = m.engine.State()
		return m, nil

	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	header := theme.AppNameStyle.Render("billclock") + "  " + statusBadge(m.state.Status)
	if m.subtitle != "" {
		header += "  " + theme.MutedStyle.Render(m.subtitle)
	}
	b.WriteString(header + "\n")
	b.WriteString(theme.ClockStyle.Render(FormatElapsed(m.state.ElapsedSeconds)) + "\n")

	b.WriteString(field("Matter", orDash(m.state.SelectedMatterID)))
	b.WriteString(field("Notes", orDash(m.state.Notes)))
	if s := m.state.SuggestedMatterID; s != "" && s != m.state.SelectedMatterID && !m.state.IsRunning {
		b.WriteString(field("Suggested", theme.SuggestionStyle.Render(s+"  (press a)")))
	}

	if info := m.engine.Recovery(); info != nil && info.HasSignificantGap {
		b.WriteString("\n" + theme.RecoveryBannerStyle.Render(recoveryText(info)) + "\n")
	}
	if w := m.engine.Warning(); w != nil {
		b.WriteString("\n" + warningBanner(w) + "\n")
	}

	errText := m.state.Error
	if errText == "" {
		errText = m.lastErr
	}
	if errText != "" {
		b.WriteString("\n" + theme.ErrorStyle.Render(formatErrorForDisplay(errText, m.width)) + "\n")
	}

	switch m.mode {
	case modeEditNotes:
		b.WriteString("\n" + theme.InputPromptStyle.Render("Notes: ") + m.input.View() + "\n")
	case modeEditMatter:
		b.WriteString("\n" + theme.InputPromptStyle.Render("Matter: ") + m.input.View() + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// FormatElapsed renders seconds as HH:MM:SS. Hours are not capped.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func statusBadge(status domain.TimerStatus) string {
	var style lipgloss.Style
	switch status {
	case domain.StatusRunning:
		style = theme.RunningIconStyle
	case domain.StatusStopping:
		style = theme.StoppingIconStyle
	case domain.StatusError:
		style = theme.FailedIconStyle
	default:
		style = theme.IdleIconStyle
	}
	return style.Render(status.Symbol() + " " + string(status))
}

func field(label, value string) string {
	return theme.LabelStyle.Render(label) + theme.NormalStyle.Render(value) + "\n"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func recoveryText(info *domain.RecoveryInfo) string {
	return fmt.Sprintf("Recovered a running session after %s away. Elapsed time kept counting.",
		FormatElapsed(info.TimeGapSeconds))
}

func warningBanner(w *domain.WarningInfo) string {
	if w.Type == domain.WarningAutoStopped {
		return theme.AutoStopBannerStyle.Render(fmt.Sprintf(
			"Timer stopped automatically after %s. Review the time entry.", FormatElapsed(w.ElapsedSeconds)))
	}
	return theme.WarningBannerStyle.Render(fmt.Sprintf(
		"Timer has been running for %s. Still working?", FormatElapsed(w.ElapsedSeconds)))
}
