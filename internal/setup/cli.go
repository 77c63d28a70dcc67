package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Config holds the command-line options of one invocation.
type Config struct {
	LogLvl      string
	ConfigPath  string
	Root        string
	ModelPath   string
	Python      string
	AssumeYes   bool
	SkipDeps    bool
	MetricsFile string
}

// defaultConfig seeds flag defaults from AGSETUP_* environment variables.
func defaultConfig() *Config {
	return &Config{
		LogLvl:      envStr("AGSETUP_LOG_LEVEL", "info"),
		ConfigPath:  envStr("AGSETUP_CONFIG", ""),
		Root:        envStr("AGSETUP_ROOT", "."),
		AssumeYes:   envBool("AGSETUP_YES", false),
		SkipDeps:    envBool("AGSETUP_SKIP_DEPS", false),
		MetricsFile: envStr("AGSETUP_METRICS_FILE", ""),
	}
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

// Main returns an exit code for use by cmd/agsetup.
func Main() int { return MainWithArgs(os.Args[1:]) }

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cfg := defaultConfig()
	root := buildRootCmdWith(cfg)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := root.ExecuteContext(ctx)

	if cfg.MetricsFile != "" {
		if werr := writeMetrics(cfg.MetricsFile); werr != nil {
			fmt.Fprintf(errOut, "write metrics: %v\n", werr)
		}
	}
	return exitCode(err, errOut)
}

func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	fmt.Fprintln(errOut, err.Error())
	return 1
}
