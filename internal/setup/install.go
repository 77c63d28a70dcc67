package setup

import (
	"context"
	"fmt"
	"strings"

	"antigravity/internal/common/fsutil"
	"antigravity/internal/config"
)

func installDependencies(ctx context.Context, s *session) error {
	s.ui.Section("Installing dependencies...")

	req := s.app.Requirements
	if !fsutil.IsFile(req) {
		s.ui.Error("Requirements file not found: %s", req)
		return fmt.Errorf("%w: %s", ErrRequirementsMissing, req)
	}
	python, err := s.resolvePython()
	if err != nil {
		s.ui.Error("Python interpreter not found")
		return err
	}
	if s.app.Venv != "" {
		if python, err = ensureVenv(ctx, s, python); err != nil {
			s.ui.Error("Failed to create virtual environment: %v", err)
			return err
		}
		s.python = python
	}

	s.ui.Blank()
	s.ui.Line("Installing %s (this may take a few minutes)...", packageName(s.app.LlamaCppPackage))
	if err := s.pip(ctx, python, llamaCppArgs(s.app)...); err != nil {
		s.ui.Error("Failed to install dependencies: %v", err)
		return err
	}

	s.ui.Blank()
	s.ui.Line("Installing other dependencies...")
	if err := s.pip(ctx, python, "install", "-r", req); err != nil {
		s.ui.Error("Failed to install dependencies: %v", err)
		return err
	}

	s.ui.OK("Dependencies installed successfully")
	return nil
}

// ensureVenv creates the configured virtualenv unless its interpreter already
// exists, and returns that interpreter.
func ensureVenv(ctx context.Context, s *session, python string) (string, error) {
	venv := s.app.Venv
	vpy := venvPython(venv)
	if fsutil.IsFile(vpy) {
		s.ui.OK("Using virtual environment: %s", venv)
		return vpy, nil
	}
	verb := "Creating"
	if fsutil.PathExists(venv) {
		verb = "Repairing"
	}
	s.ui.Line("%s virtual environment in %s...", verb, venv)
	c := Cmd{Path: python, Args: []string{"-m", "venv", venv}, Dir: s.root, Stdout: s.out, Stderr: s.errOut}
	s.log.Debug().Str("cmd", c.String()).Msg("running")
	if err := fnRunCmd(ctx, c); err != nil {
		return "", err
	}
	if !fsutil.IsFile(vpy) {
		return "", fmt.Errorf("venv interpreter missing at %s", vpy)
	}
	s.ui.OK("Virtual environment created: %s", venv)
	return vpy, nil
}

func (s *session) pip(ctx context.Context, python string, args ...string) error {
	c := Cmd{
		Path:   python,
		Args:   append([]string{"-m", "pip"}, args...),
		Dir:    s.root,
		Stdout: s.out,
		Stderr: s.errOut,
	}
	s.log.Debug().Str("cmd", c.String()).Msg("running")
	return fnRunCmd(ctx, c)
}

func llamaCppArgs(c config.Config) []string {
	args := []string{"install", c.LlamaCppPackage}
	if c.ExtraIndexURL != "" {
		args = append(args, "--extra-index-url", c.ExtraIndexURL)
	}
	return args
}

// packageName strips the version specifier from a pip requirement.
func packageName(spec string) string {
	if i := strings.IndexAny(spec, "=<>!~[; "); i > 0 {
		return spec[:i]
	}
	return spec
}
