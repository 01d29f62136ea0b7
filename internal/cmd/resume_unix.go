//go:build !windows

package cmd

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/renato0307/billclock/internal/logging"
)

// notifyOnResume calls fn whenever the process is continued after a stop
func notifyOnResume(ctx context.Context, fn func()) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGCONT)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			logging.Logger.Debug("Process continued, recomputing elapsed time")
			fn()
		}
	}
}
