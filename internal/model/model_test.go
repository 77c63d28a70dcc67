package model

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExistsMatchesFilesystem(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "Qwen3-8B-Q4_K_M.gguf")
	if Exists(p) {
		t.Fatalf("missing file reported as present")
	}
	writeFile(t, p, "x")
	if !Exists(p) {
		t.Fatalf("present file reported as missing")
	}
	if err := os.Remove(p); err != nil {
		t.Fatal(err)
	}
	if Exists(p) {
		t.Fatalf("removed file still reported as present")
	}
	if Exists(d) {
		t.Fatalf("directory must not count as a model file")
	}
}

func TestCheck_Missing(t *testing.T) {
	st := Check(filepath.Join(t.TempDir(), "nope.gguf"))
	if st.Exists || st.SizeBytes != 0 || st.Info != nil || st.InspectErr != nil {
		t.Fatalf("unexpected status for missing file: %+v", st)
	}
}

func TestCheck_NotGGUF(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.gguf")
	writeFile(t, p, "definitely not a gguf header")
	st := Check(p)
	if !st.Exists {
		t.Fatalf("expected file to exist")
	}
	if st.SizeBytes != int64(len("definitely not a gguf header")) {
		t.Fatalf("unexpected size %d", st.SizeBytes)
	}
	if st.Info != nil || st.InspectErr == nil {
		t.Fatalf("expected inspect error for non-gguf content: %+v", st)
	}
}

func TestInspect_MissingFile(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "none.gguf")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestScanAndSiblings(t *testing.T) {
	d := t.TempDir()
	writeFile(t, filepath.Join(d, "b.GGUF"), "x")
	writeFile(t, filepath.Join(d, "a.gguf"), "x")
	writeFile(t, filepath.Join(d, "notes.txt"), "x")
	if err := os.Mkdir(filepath.Join(d, "dir.gguf"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Scan(d)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 || filepath.Base(got[0]) != "a.gguf" || filepath.Base(got[1]) != "b.GGUF" {
		t.Fatalf("unexpected scan result: %v", got)
	}
	sib := Siblings(filepath.Join(d, "wanted.gguf"))
	if len(sib) != 2 {
		t.Fatalf("expected 2 siblings, got %v", sib)
	}
	sib = Siblings(filepath.Join(d, "a.gguf"))
	if len(sib) != 1 || filepath.Base(sib[0]) != "b.GGUF" {
		t.Fatalf("model itself must be excluded: %v", sib)
	}
	if s := Siblings(filepath.Join(d, "missing", "x.gguf")); len(s) != 0 {
		t.Fatalf("expected no siblings for missing dir, got %v", s)
	}
	if _, err := Scan(filepath.Join(d, "missing")); err == nil {
		t.Fatalf("expected error scanning missing dir")
	}
}

func TestFitsInMemory(t *testing.T) {
	const gb = 1 << 30
	if !FitsInMemory(5*gb, 16*gb) {
		t.Fatalf("5GB should fit in 16GB")
	}
	if FitsInMemory(16*gb, 8*gb) {
		t.Fatalf("16GB should not fit in 8GB")
	}
	if !FitsInMemory(100*gb, 0) {
		t.Fatalf("unknown RAM should be treated as sufficient")
	}
}

func TestHumanSize(t *testing.T) {
	if got := HumanSize(5_030_000_000); got != "5.03GB" {
		t.Fatalf("unexpected human size %q", got)
	}
}
