// Package testutil provides common test helpers for the uvenv project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// WriteEnv fabricates an environment directory under baseDir the way a
// successful uv venv run would leave it: env root, bin dir with activation
// scripts, and (unless rawMeta is empty) a metadata file with the given
// raw content. Passing invalid JSON exercises the corrupt-metadata path.
func WriteEnv(t *testing.T, baseDir, name, rawMeta string) string {
	t.Helper()

	envDir := filepath.Join(baseDir, name)
	binDir := filepath.Join(envDir, "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("WriteEnv: mkdir failed: %v", err)
	}

	for _, script := range []string{"activate", "activate.fish", "python"} {
		if err := os.WriteFile(filepath.Join(binDir, script), nil, 0755); err != nil {
			t.Fatalf("WriteEnv: write %s failed: %v", script, err)
		}
	}

	if rawMeta != "" {
		metaPath := filepath.Join(envDir, "uvenv.json")
		if err := os.WriteFile(metaPath, []byte(rawMeta), 0600); err != nil {
			t.Fatalf("WriteEnv: write metadata failed: %v", err)
		}
	}

	return envDir
}

// MetadataJSON returns a well-formed metadata document for fixtures.
func MetadataJSON(name, pythonVersion string, active bool) string {
	activeStr := "false"
	if active {
		activeStr = "true"
	}
	return `{
  "name": "` + name + `",
  "python_version": "` + pythonVersion + `",
  "created_at": "2026-08-01T09:00:00Z",
  "last_used": null,
  "active": ` + activeStr + `
}`
}

// CreatingVenv wires a FakeCommander so that "uv venv <path>" calls create
// the target directory and its bin/ subdir, mimicking the real binary.
func CreatingVenv(t *testing.T, fake *FakeCommander) {
	t.Helper()

	fake.OnRun = func(name string, args []string) {
		if name == "uv" && len(args) >= 2 && args[0] == "venv" {
			if err := os.MkdirAll(filepath.Join(args[1], "bin"), 0755); err != nil {
				t.Fatalf("CreatingVenv: mkdir failed: %v", err)
			}
		}
	}
}
