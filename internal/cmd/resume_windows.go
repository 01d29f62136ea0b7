//go:build windows

package cmd

import "context"

// notifyOnResume waits for ctx; Windows has no SIGCONT
func notifyOnResume(ctx context.Context, fn func()) error {
	<-ctx.Done()
	return nil
}
