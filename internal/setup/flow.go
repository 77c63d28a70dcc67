package setup

import (
	"context"
	"path/filepath"
)

const appTitle = "Antigravity Local"

// runSetup is the interactive first-run flow: Python check, directories,
// model check, optional dependency install, then start instructions.
func runSetup(ctx context.Context, s *session) error {
	s.ui.Banner(appTitle + " - Setup")

	if err := s.step("python", func() error { return fnCheckPython(ctx, s) }); err != nil {
		return s.abort(ctx, err)
	}
	if err := s.step("directories", func() error { return fnCreateDirectories(s) }); err != nil {
		return s.abort(ctx, err)
	}

	if err := s.step("model", func() error { return modelStep(s) }); err != nil {
		s.ui.Blank()
		s.ui.Warning("Model file not found. Please update config.yaml")
		ok, perr := s.prompt.Confirm(ctx, "Continue anyway?")
		if perr != nil {
			return s.abort(ctx, perr)
		}
		if !ok {
			return exitWith(1, ErrModelDeclined)
		}
	}
	if err := s.checkpoint(ctx); err != nil {
		return err
	}

	s.ui.Blank()
	s.ui.Rule()
	if s.opts.SkipDeps {
		s.ui.Line("Skipping Python dependency installation (--skip-deps)")
	} else {
		ok, err := s.prompt.Confirm(ctx, "Install Python dependencies?")
		if err != nil {
			return s.abort(ctx, err)
		}
		if ok {
			if err := s.step("install", func() error { return fnInstallDependencies(ctx, s) }); err != nil {
				return s.abort(ctx, err)
			}
			// A failed import is reported but does not fail setup.
			_ = s.step("verify", func() error { return fnVerifyDependencies(ctx, s) })
		}
	}
	if err := s.checkpoint(ctx); err != nil {
		return err
	}

	checkServerPort(s)
	printNextSteps(s)
	return nil
}

func modelStep(s *session) error {
	if !fnCheckModel(s) {
		return ErrModelMissing
	}
	return nil
}

func checkServerPort(s *session) {
	host, port, err := serverHostPort(s.app.ServerURL)
	if err != nil {
		s.log.Debug().Err(err).Msg("skipping port check")
		return
	}
	if busy, desc := fnIsPortBusy(host, port); busy {
		s.ui.Blank()
		s.ui.Warning("Port %d is already in use (%s)", port, desc)
		s.ui.Detail("Stop the other process before starting %s", appTitle)
	}
}

func printNextSteps(s *session) {
	python := "python"
	if s.python != "" {
		python = s.python
	}
	s.ui.Blank()
	s.ui.Rule()
	s.ui.Success("Setup complete!")
	s.ui.Blank()
	s.ui.Line("To start %s:", appTitle)
	s.ui.Line("  1. Run: run.bat")
	s.ui.Line("  2. Or run: %s %s", python, filepath.Join("backend", "api.py"))
	s.ui.Line("  3. Open browser to: %s", s.app.ServerURL)
	s.ui.Rule()
}
