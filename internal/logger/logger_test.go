package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/mathdrill/internal/config"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		log, err := New(&config.Config{Env: env})
		if err != nil {
			t.Fatalf("New(%s): %v", env, err)
		}
		if log == nil {
			t.Fatalf("New(%s) returned nil logger", env)
		}
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathdrill.log")
	log, err := NewFile(&config.Config{Env: "production"}, path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Info("notebook saved")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "notebook saved") {
		t.Errorf("log file = %q, want message", b)
	}
}
