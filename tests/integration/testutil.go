// Package integration provides end-to-end tests for the wardrobe CLI and the
// preset store over its real storage backends.
package integration

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// wardrobeBin is the path to the built wardrobe binary.
	wardrobeBin string
	// buildErr captures any build error.
	buildErr error
)

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// cliEnv isolates one CLI test: its own config dir and preset dir, wired in
// through the environment so tests never touch the developer's real
// directories.
type cliEnv struct {
	configDir string
	dataDir   string
	backend   string
}

// newCLIEnv returns a cliEnv over fresh temp directories.
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("wardrobe binary not built: %v", buildErr)
	}
	return &cliEnv{
		configDir: t.TempDir(),
		dataDir:   t.TempDir(),
		backend:   "fs",
	}
}

// run executes the wardrobe binary with args and returns combined output and
// exit code.
func (e *cliEnv) run(t *testing.T, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(wardrobeBin, args...)
	cmd.Env = append(os.Environ(),
		"WARDROBE_CONFIG_DIR="+e.configDir,
		"WARDROBE_DATA_DIR="+e.dataDir,
	)
	if e.backend != "" {
		cmd.Args = append(cmd.Args, "--backend", e.backend)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return out.String(), 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.String(), exitErr.ExitCode()
	}
	t.Fatalf("running wardrobe %v: %v\n%s", args, err, out.String())
	return "", -1
}

// mustRun executes the wardrobe binary and fails the test on a non-zero exit.
func (e *cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, code := e.run(t, args...)
	if code != 0 {
		t.Fatalf("wardrobe %v exited %d:\n%s", args, code, out)
	}
	return out
}
