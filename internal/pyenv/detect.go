package pyenv

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNotFound is returned by Find when no candidate is on PATH.
var ErrNotFound = errors.New("python interpreter not found")

// Indirection for tests.
var (
	lookPath   = exec.LookPath
	execOutput = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		// Python < 3.4 prints --version to stderr.
		return exec.CommandContext(ctx, name, args...).CombinedOutput()
	}
)

// Candidates lists interpreter names to try, most specific first.
func Candidates() []string {
	if runtime.GOOS == "windows" {
		return []string{"py", "python", "python3"}
	}
	return []string{"python3", "python"}
}

// Find returns the resolved path of the first candidate found on PATH.
func Find(candidates ...string) (string, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if p, err := lookPath(c); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (tried %s)", ErrNotFound, strings.Join(candidates, ", "))
}

// Detect runs "<python> --version" and parses the reported version.
func Detect(ctx context.Context, python string) (Version, error) {
	out, err := execOutput(ctx, python, "--version")
	if err != nil {
		return Version{}, fmt.Errorf("%s --version: %w", python, err)
	}
	v, err := ParseVersion(string(out))
	if err != nil {
		return Version{}, fmt.Errorf("%s --version: %w", python, err)
	}
	return v, nil
}
