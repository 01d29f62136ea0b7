package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
	"github.com/renato0307/billclock/internal/ui"
)

// SessionEngine is the timer engine one SSH session drives
type SessionEngine interface {
	ui.Engine
	Mount(ctx context.Context) error
	OnChange(listener func(domain.TimerState)) func()
	Unmount()
}

// EngineFactory builds an engine attached to a message bus endpoint
type EngineFactory func(bus ports.MessageBus) SessionEngine

// programHandler creates a timer context for each SSH session. The
// context is torn down when the session ends.
func (s *Server) programHandler(sess ssh.Session) *tea.Program {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
	ctx := sess.Context()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	endpoint := s.hub.Endpoint(s.config.Channel)
	engine := s.newEngine(endpoint)
	if err := engine.Mount(ctx); err != nil {
		logging.Logger.Error("Failed to mount timer for SSH session",
			"error", err,
			"session_id", sessionID)
		_ = endpoint.Close()
		return tea.NewProgram(errorModel{err}, bubbletea.MakeOptions(sess)...)
	}

	model := ui.NewModel(ctx, engine, sess.User())
	opts := append(bubbletea.MakeOptions(sess), tea.WithAltScreen())
	program := tea.NewProgram(model, opts...)

	pump := ui.NewStatePump()
	removeListener := engine.OnChange(pump.Push)
	go func() {
		_ = pump.Run(ctx, program.Send)
	}()

	started := time.Now()
	go func() {
		<-ctx.Done()
		removeListener()
		engine.Unmount()
		_ = endpoint.Close()
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(started).String())
	}()

	return program
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
