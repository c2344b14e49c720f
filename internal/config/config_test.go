package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, ":50062", cfg.ListenAddr)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "data/source", cfg.DataDir)
		assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")
		t.Setenv("DATA_DIR", "/tmp/records")
		t.Setenv("SHUTDOWN_TIMEOUT", "3")

		cfg := Load()
		assert.Equal(t, "127.0.0.1:7000", cfg.ListenAddr)
		assert.Equal(t, "/tmp/records", cfg.DataDir)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		cfg := Load()
		assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	})
}
