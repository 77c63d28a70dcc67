package setup

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestConfirm_Answers(t *testing.T) {
	cases := map[string]bool{
		"y\n":     true,
		"Y\n":     true,
		"yes\n":   true,
		" y \r\n": true,
		"y":       true,
		"n\n":     false,
		"no\n":    false,
		"\n":      false,
		"yep\n":   false,
		"":        false,
	}
	for in, want := range cases {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader(in), &out, false)
		got, err := p.Confirm(context.Background(), "Continue anyway?")
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %v want %v", in, got, want)
		}
		if !strings.HasPrefix(out.String(), "Continue anyway? (y/n): ") {
			t.Fatalf("unexpected prompt text %q", out.String())
		}
	}
}

func TestConfirm_SharedReader(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("n\ny\n"), &out, false)
	first, _ := p.Confirm(context.Background(), "one?")
	second, _ := p.Confirm(context.Background(), "two?")
	if first || !second {
		t.Fatalf("got %v %v", first, second)
	}
}

func TestConfirm_AssumeYes(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(""), &out, true)
	ok, err := p.Confirm(context.Background(), "Install Python dependencies?")
	if err != nil || !ok {
		t.Fatalf("got %v %v", ok, err)
	}
	if out.String() != "Install Python dependencies? (y/n): y\n" {
		t.Fatalf("unexpected echo %q", out.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestConfirm_ReadError(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(failingReader{}, &out, false)
	if _, err := p.Confirm(context.Background(), "x?"); !errors.Is(err, errPrompt) {
		t.Fatalf("expected read error")
	}
}

func TestConfirm_CancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	var out bytes.Buffer
	p := newPrompter(pr, &out, false)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := p.Confirm(ctx, "Continue anyway?")
		errc <- err
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Confirm still blocked after cancel")
	}
}

func TestConfirm_AlreadyCancelled(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("y\n"), &out, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if ok, err := p.Confirm(ctx, "x?"); ok || !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v %v", ok, err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed, got %q", out.String())
	}
}

func TestConfirm_ReadErrorIsSticky(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("y"), &out, false)
	if ok, _ := p.Confirm(context.Background(), "one?"); !ok {
		t.Fatalf("unterminated y should be yes")
	}
	if ok, err := p.Confirm(context.Background(), "two?"); ok || err != nil {
		t.Fatalf("after EOF expected no, got %v %v", ok, err)
	}
}
