package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"port: 9000\nactivity_feed_limit: 25\nmax_thread_len: 100\n",
		"pg:\n  host: 'db'\n  port: 5432\n  user: 'u'\n  password: 'p'\n  dbname: 'd'\n",
	)

	cfg := MustLoad(dir)

	if cfg.Public.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Public.Port)
	}
	if cfg.Public.ActivityFeedLimit != 25 {
		t.Errorf("expected feed limit 25, got %d", cfg.Public.ActivityFeedLimit)
	}
	if cfg.Private.Pg.Host != "db" {
		t.Errorf("expected pg host 'db', got %q", cfg.Private.Pg.Host)
	}
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfigs(t, "log_level: 'debug'\n", "pg:\n  host: 'db'\n")

	cfg := MustLoad(dir)

	if cfg.Public.ActivityFeedLimit != DefaultActivityFeedLimit {
		t.Errorf("expected default feed limit %d, got %d", DefaultActivityFeedLimit, cfg.Public.ActivityFeedLimit)
	}
	if cfg.Public.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Public.Port)
	}
	if cfg.Public.MaxThreadLen != 4096 {
		t.Errorf("expected default max thread len 4096, got %d", cfg.Public.MaxThreadLen)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	dir := t.TempDir() // no config files at all

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config file, got none")
		}
	}()

	_ = MustLoad(dir)
}
