package setup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"antigravity/internal/pyenv"
)

// fakeHost stubs every side effect the setup flow has outside the temp root.
type fakeHost struct {
	root    string
	model   string
	req     string
	version string
	python  string
	cmds    []Cmd
	runErr  func(c Cmd) error
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	for _, k := range []string{"AGSETUP_MODEL_PATH", "AGSETUP_PYTHON", "AGSETUP_VENV", "AGSETUP_CONFIG", "AGSETUP_ROOT", "AGSETUP_YES", "AGSETUP_SKIP_DEPS", "AGSETUP_METRICS_FILE"} {
		unsetEnv(t, k)
	}
	root := t.TempDir()
	fh := &fakeHost{
		root:    root,
		model:   filepath.Join(root, "models", "Qwen3-8B-Q4_K_M.gguf"),
		req:     filepath.Join(root, "backend", "requirements.txt"),
		version: "Python 3.11.4",
		python:  "/usr/bin/python3",
	}
	writeFile(t, fh.model, "not-really-gguf")
	writeFile(t, fh.req, "fastapi\nuvicorn\n")

	oldFind, oldDetect, oldRun := fnFindPython, fnDetectPython, fnRunCmd
	oldMem, oldPort := fnTotalMemory, fnIsPortBusy
	fnFindPython = func(candidates ...string) (string, error) { return fh.python, nil }
	fnDetectPython = func(ctx context.Context, python string) (pyenv.Version, error) {
		return pyenv.ParseVersion(fh.version)
	}
	fnRunCmd = func(ctx context.Context, c Cmd) error {
		fh.cmds = append(fh.cmds, c)
		if fh.runErr != nil {
			return fh.runErr(c)
		}
		return nil
	}
	fnTotalMemory = func() (uint64, error) { return 0, errors.New("unknown") }
	fnIsPortBusy = func(string, int) (bool, string) { return false, "" }
	t.Cleanup(func() {
		fnFindPython, fnDetectPython, fnRunCmd = oldFind, oldDetect, oldRun
		fnTotalMemory, fnIsPortBusy = oldMem, oldPort
	})
	return fh
}

// run invokes the CLI rooted at the fake project with the fake model path.
func (fh *fakeHost) run(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	full := append(append([]string(nil), args...), "--root", fh.root, "--model", fh.model)
	code, out, _ := fh.runRaw(t, stdin, full...)
	return code, out
}

func (fh *fakeHost) runRaw(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func (fh *fakeHost) cmdLines() []string {
	var lines []string
	for _, c := range fh.cmds {
		lines = append(lines, c.Path+" "+strings.Join(c.Args, " "))
	}
	return lines
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		}
	})
}

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, val)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func assertNotContains(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(out, w) {
			t.Fatalf("output unexpectedly contains %q:\n%s", w, out)
		}
	}
}

// assertOrder checks that each marker appears after the previous one.
func assertOrder(t *testing.T, out string, markers ...string) {
	t.Helper()
	pos := 0
	for _, m := range markers {
		i := strings.Index(out[pos:], m)
		if i < 0 {
			t.Fatalf("marker %q missing or out of order:\n%s", m, out)
		}
		pos += i + len(m)
	}
}

func buildRootCmd() *cobra.Command { return buildRootCmdWith(defaultConfig()) }

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitForOutput(t *testing.T, b *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(b.String(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q:\n%s", want, b.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
