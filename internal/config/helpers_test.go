package config

import (
	"os"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// godotenv sets variables with os.Setenv, outside t.Setenv bookkeeping.
func unsetenv(key string) {
	_ = os.Unsetenv(key)
}
