package setup

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// verifyDependencies checks that the inference binding imports with the
// interpreter dependencies were installed into.
func verifyDependencies(ctx context.Context, s *session) error {
	python, err := s.resolvePython()
	if err != nil {
		return err
	}
	mod := s.app.VerifyImport
	var buf bytes.Buffer
	c := Cmd{
		Path:   python,
		Args:   []string{"-c", fmt.Sprintf("import %s as m; print(getattr(m, '__version__', ''))", mod)},
		Dir:    s.root,
		Stdout: &buf,
		Stderr: &buf,
	}
	if err := fnRunCmd(ctx, c); err != nil {
		s.ui.Warning("Could not import %s with %s", mod, python)
		s.log.Debug().Str("output", strings.TrimSpace(buf.String())).Msg("import check failed")
		return fmt.Errorf("import %s: %w", mod, err)
	}
	if ver := strings.TrimSpace(buf.String()); ver != "" {
		s.ui.OK("%s %s is importable", mod, ver)
	} else {
		s.ui.OK("%s is importable", mod)
	}
	return nil
}
