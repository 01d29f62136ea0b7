package server

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/billclock/internal/adapters/bus"
	"github.com/renato0307/billclock/internal/ports"
)

func TestNewServer_GeneratesHostKey(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Channel:            "billclock:timer-sync",
		Host:               "127.0.0.1",
		HostKeyPath:        filepath.Join(dir, "ssh", "ssh_host_ed25519"),
		Port:               "0",
	}

	srv, err := NewServer(cfg, bus.NewHub(), func(ports.MessageBus) SessionEngine { return nil })
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.Address())
	assert.FileExists(t, cfg.HostKeyPath)
}

func TestNewServer_RequiresFactory(t *testing.T) {
	_, err := NewServer(Config{HostKeyPath: filepath.Join(t.TempDir(), "key")}, bus.NewHub(), nil)
	assert.Error(t, err)
}
