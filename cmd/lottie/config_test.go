package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/test"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOTTIE_FORCE_TRIM_MODE", "individual")
	t.Setenv("LOTTIE_WORKERS", "4")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	test.Error(t, err)
	test.T(t, cfg.ForceTrimMode, lottie.TrimModeIndividual)
	test.T(t, cfg.Workers, 4)
	test.String(t, cfg.LogLevel, "warn")
	test.T(t, cfg.CacheTTL, 5*time.Minute)
}

func TestLoadConfigFile(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	test.Error(t, os.WriteFile(env, []byte("LOTTIE_LOG_LEVEL=debug\nLOTTIE_CACHE_TTL=1m\n"), 0644))
	t.Setenv("LOTTIE_LOG_LEVEL", "")
	os.Unsetenv("LOTTIE_LOG_LEVEL")
	t.Setenv("LOTTIE_CACHE_TTL", "")
	os.Unsetenv("LOTTIE_CACHE_TTL")

	cfg, err := LoadConfig(env)
	test.Error(t, err)
	test.String(t, cfg.LogLevel, "debug")
	test.T(t, cfg.CacheTTL, time.Minute)
	test.T(t, cfg.ForceTrimMode, lottie.TrimModeUnset)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("LOTTIE_FORCE_TRIM_MODE", "sideways")
	_, err := LoadConfig("")
	test.That(t, err != nil)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("info", "")
	test.Error(t, err)
	test.That(t, log != nil)

	log, err = NewLogger("debug", filepath.Join(t.TempDir(), "lottie.log"))
	test.Error(t, err)
	log.Info("message")
	_ = log.Sync()

	_, err = NewLogger("loud", "")
	test.That(t, err != nil)
}
