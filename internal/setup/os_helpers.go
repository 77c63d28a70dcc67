package setup

import (
	"path/filepath"
	"runtime"
)

// venvPython is the interpreter inside a virtualenv created by "python -m venv".
func venvPython(venv string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venv, "Scripts", "python.exe")
	}
	return filepath.Join(venv, "bin", "python")
}
