package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/coursegraph/pkg/core/layout"
	"github.com/matzehuels/coursegraph/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`direction = "LR"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Direction != "LR" {
		t.Errorf("Direction = %q, want LR", cfg.Direction)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
direction = "left-to-right"

[layout]
node_width = 200.0
vertical_gap = 60.0

[cache]
backend = "Redis"
redis_url = "redis://localhost:6379/1"

[server]
addr = ":9090"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := Config{
		Direction: "LR",
		Layout: layout.Config{
			NodeWidth:     200,
			NodeHeight:    layout.DefaultNodeHeight,
			HorizontalGap: layout.DefaultHorizontalGap,
			VerticalGap:   60,
		},
		Cache:  CacheConfig{Backend: CacheBackendRedis, RedisURL: "redis://localhost:6379/1"},
		Server: ServerConfig{Addr: ":9090"},
	}
	if cfg != want {
		t.Errorf("LoadConfig() =\n%+v\nwant\n%+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"syntax", `direction = `, "parse config"},
		{"unknown key", "colour = \"red\"", "unknown keys: colour"},
		{"bad direction", `direction = "diagonal"`, "direction"},
		{"bad backend", "[cache]\nbackend = \"memcached\"", "cache.backend"},
		{"redis without url", "[cache]\nbackend = \"redis\"", "redis_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfig() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("LoadConfig() error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLayoutOptions(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.Config.Direction = "LR"
	c.Config.Layout.NodeWidth = 100

	opts := c.layoutOptions("")
	if opts.Direction != "LR" {
		t.Errorf("Direction = %q, want config value LR", opts.Direction)
	}
	if opts.Config.NodeWidth != 100 {
		t.Errorf("NodeWidth = %v, want 100", opts.Config.NodeWidth)
	}

	if opts := c.layoutOptions("TB"); opts.Direction != "TB" {
		t.Errorf("Direction = %q, want flag value TB", opts.Direction)
	}
}
