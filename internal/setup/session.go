package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"antigravity/internal/common/fsutil"
	"antigravity/internal/config"
	"antigravity/internal/pyenv"
)

// session is the state of one agsetup invocation.
type session struct {
	opts   *Config
	root   string
	app    config.Config
	ui     *reporter
	prompt *prompter
	log    zerolog.Logger
	out    io.Writer
	errOut io.Writer

	// python is the interpreter used for installs; it switches to the venv
	// interpreter once one is created.
	python string
}

func newSession(cmd *cobra.Command, opts *Config) (*session, error) {
	log := newLogger(cmd.ErrOrStderr(), opts.LogLvl)
	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err := fsutil.ExpandHome(root)
	if err != nil {
		return nil, err
	}
	if root, err = filepath.Abs(root); err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}
	app, err := loadAppConfig(root, opts.ConfigPath, log)
	if err != nil {
		return nil, err
	}
	app = app.WithDefaults().ApplyEnv()
	if opts.ModelPath != "" {
		app.ModelPath = opts.ModelPath
	}
	if opts.Python != "" {
		app.Python = opts.Python
	}
	if app, err = app.Resolve(root); err != nil {
		return nil, err
	}
	log.Debug().Str("root", root).Str("model", app.ModelPath).Strs("dirs", app.Directories).Msg("configuration resolved")
	return &session{
		opts:   opts,
		root:   root,
		app:    app,
		ui:     newReporter(cmd.OutOrStdout()),
		prompt: newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts.AssumeYes),
		log:    log,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// loadAppConfig reads path, or <root>/config.yaml when path is empty and the
// file exists. No file means all defaults.
func loadAppConfig(root, path string, log zerolog.Logger) (config.Config, error) {
	if path == "" {
		def := filepath.Join(root, "config.yaml")
		if !fsutil.IsFile(def) {
			log.Debug().Str("path", def).Msg("no config file, using defaults")
			return config.Config{}, nil
		}
		path = def
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	log.Debug().Str("path", path).Msg("config loaded")
	return cfg, nil
}

// resolvePython picks the configured interpreter, or the first candidate on PATH.
func (s *session) resolvePython() (string, error) {
	if s.python != "" {
		return s.python, nil
	}
	var (
		p   string
		err error
	)
	if s.app.Python != "" {
		p, err = fnFindPython(s.app.Python)
	} else {
		p, err = fnFindPython(pyenv.Candidates()...)
	}
	if err != nil {
		return "", err
	}
	s.log.Debug().Str("python", p).Msg("interpreter resolved")
	s.python = p
	return p, nil
}

// step runs fn and records its outcome.
func (s *session) step(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	took := time.Since(start)
	observeStep(name, took, err)
	s.log.Debug().Str("step", name).Dur("took", took).AnErr("err", err).Msg("step finished")
	return err
}

// checkpoint stops the run when ctx was cancelled by Ctrl-C or SIGTERM.
func (s *session) checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		s.ui.Blank()
		s.ui.Error("Setup interrupted")
		return exitWith(exitInterrupted, err)
	}
	return nil
}

// abort turns a step or prompt failure into an exit error. Failures caused by
// cancellation exit as interrupted. Prompt read errors have not been reported
// yet and are printed here.
func (s *session) abort(ctx context.Context, err error) error {
	if cerr := s.checkpoint(ctx); cerr != nil {
		return cerr
	}
	if errors.Is(err, errPrompt) {
		s.ui.Error("%v", err)
	}
	return exitWith(1, err)
}
