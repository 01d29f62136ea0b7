package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/billclock/internal/adapters/bus"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/paths"
	"github.com/renato0307/billclock/internal/ports"
	"github.com/renato0307/billclock/internal/server"
)

// ServeCmd serves the timer over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file allowed to connect" default:"~/.ssh/authorized_keys"`
	Host           string `help:"Host to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	c := cli.Container
	hub := bus.NewHub()

	remote, err := c.NewBus()
	if err != nil {
		return fmt.Errorf("failed to join message bus: %w", err)
	}
	if remote != nil {
		stopBridge, err := bus.Bridge(hub.Endpoint(c.Config.BusChannel), remote)
		if err != nil {
			return err
		}
		defer stopBridge()
		logging.Logger.Info("Bridging SSH sessions to local processes", "channel", c.Config.BusChannel)
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: paths.ExpandPath(s.AuthorizedKeys),
		Channel:            c.Config.BusChannel,
		Host:               s.Host,
		HostKeyPath:        paths.GetHostKeyPath(),
		Port:               s.Port,
	}, hub, func(b ports.MessageBus) server.SessionEngine {
		return c.NewInteractiveEngine(context.Background(), b)
	})
	if err != nil {
		return err
	}

	return srv.Start(context.Background())
}
