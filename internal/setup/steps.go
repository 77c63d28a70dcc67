package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"antigravity/internal/common/fsutil"
	"antigravity/internal/model"
	"antigravity/internal/pyenv"
)

func checkPythonVersion(ctx context.Context, s *session) error {
	minVer, err := pyenv.ParseVersion(s.app.MinPython)
	if err != nil {
		s.ui.Error("Invalid min_python setting %q", s.app.MinPython)
		return fmt.Errorf("min_python: %w", err)
	}
	python, err := s.resolvePython()
	if err != nil {
		s.ui.Error("Python interpreter not found")
		s.ui.Detail("Install Python %s or higher, or pass --python", minVer.MajorMinor())
		return err
	}
	v, err := fnDetectPython(ctx, python)
	if err != nil {
		s.ui.Error("Could not determine Python version")
		s.ui.Detail("%v", err)
		return err
	}
	if !v.AtLeast(minVer) {
		s.ui.Error("Python %s or higher is required", minVer.MajorMinor())
		s.ui.Detail("Current version: %s", v.Raw)
		return fmt.Errorf("%w: %s < %s", ErrPythonTooOld, v, minVer)
	}
	s.ui.OK("Python %s", v)
	return nil
}

func createDirectories(s *session) error {
	s.ui.Section("Creating directories...")
	for _, d := range s.app.Directories {
		if err := fsutil.EnsureDirs(d); err != nil {
			s.ui.Error("%v", err)
			return err
		}
		s.ui.OK("%s", d)
	}
	return nil
}

// checkModelExists reports on the model file and returns whether it is present.
func checkModelExists(s *session) bool {
	st := fnModelStatus(s.app.ModelPath)
	if !st.Exists {
		s.ui.Error("Model not found: %s", st.Path)
		s.ui.Detail("Please ensure the model file exists at the specified path")
		s.ui.Detail("or update the path in config.yaml")
		if sib := model.Siblings(st.Path); len(sib) > 0 {
			s.ui.Detail("Other GGUF files in %s:", filepath.Dir(st.Path))
			for _, p := range sib {
				s.ui.Detail("  %s", filepath.Base(p))
			}
		}
		return false
	}
	s.ui.OK("Model found: %s", st.Path)
	s.ui.Detail("Size: %s", model.HumanSize(st.SizeBytes))
	switch {
	case st.Info != nil:
		if st.Info.Name != "" {
			s.ui.Detail("Name: %s", st.Info.Name)
		}
		if d := describeModel(*st.Info); d != "" {
			s.ui.Detail("%s", d)
		}
	case st.InspectErr != nil:
		s.log.Warn().Err(st.InspectErr).Msg("could not read GGUF metadata")
		s.ui.Detail("GGUF metadata unavailable")
	}
	total, err := fnTotalMemory()
	if err != nil {
		s.log.Debug().Err(err).Msg("host memory unknown")
		return true
	}
	if !model.FitsInMemory(uint64(st.SizeBytes), total) {
		s.ui.Warning("Model (%s) is larger than system RAM (%s)", model.HumanSize(st.SizeBytes), model.HumanSize(int64(total)))
	}
	return true
}

func describeModel(info model.Info) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("Architecture", info.Architecture)
	add("Parameters", info.Parameters)
	add("Quantization", info.Quantization)
	return strings.Join(parts, ", ")
}
