// Package model checks the GGUF weights file the backend loads at startup.
package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
	parser "github.com/gpustack/gguf-parser-go"
)

// Info is the subset of GGUF metadata worth showing before first run.
type Info struct {
	Name         string
	Architecture string
	Parameters   string
	Quantization string
}

// Status describes the configured model path.
type Status struct {
	Path      string
	Exists    bool
	SizeBytes int64
	Info      *Info
	// InspectErr is set when the file exists but its GGUF header could not be read.
	InspectErr error
}

// Exists reports whether path is an existing regular file.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// Check stats path and, when present, reads its GGUF metadata.
func Check(path string) Status {
	st := Status{Path: path}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return st
	}
	st.Exists = true
	st.SizeBytes = fi.Size()
	info, err := Inspect(path)
	if err != nil {
		st.InspectErr = err
		return st
	}
	st.Info = &info
	return st
}

// Inspect parses the GGUF header of path.
func Inspect(path string) (Info, error) {
	f, err := parser.ParseGGUFFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("parse gguf %s: %w", path, err)
	}
	md := f.Metadata()
	return Info{
		Name:         strings.TrimSpace(md.Name),
		Architecture: strings.TrimSpace(md.Architecture),
		Parameters:   strings.TrimSpace(md.Parameters.String()),
		Quantization: strings.TrimSpace(md.FileType.String()),
	}, nil
}

// HumanSize renders a byte count in decimal units, e.g. "5.03GB".
func HumanSize(n int64) string { return units.HumanSize(float64(n)) }
