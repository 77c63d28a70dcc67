package setup

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 60

// reporter prints the tagged status lines the user follows during setup.
// Colours are dropped automatically when the writer is not a terminal.
type reporter struct {
	out     io.Writer
	ok      lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	section lipgloss.Style
	success lipgloss.Style
}

func newReporter(w io.Writer) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		out:     w,
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		section: r.NewStyle().Foreground(lipgloss.Color("6")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

func (r *reporter) status(st lipgloss.Style, tag, format string, a ...any) {
	fmt.Fprintf(r.out, "%s %s\n", st.Render("["+tag+"]"), fmt.Sprintf(format, a...))
}

func (r *reporter) OK(format string, a ...any)      { r.status(r.ok, "OK", format, a...) }
func (r *reporter) Error(format string, a ...any)   { r.status(r.fail, "ERROR", format, a...) }
func (r *reporter) Warning(format string, a ...any) { r.status(r.warn, "WARNING", format, a...) }
func (r *reporter) Success(format string, a ...any) { r.status(r.success, "SUCCESS", format, a...) }

// Section starts a new block, preceded by a blank line.
func (r *reporter) Section(format string, a ...any) {
	r.Blank()
	r.status(r.section, "SETUP", format, a...)
}

// Detail prints an indented continuation of the previous status line.
func (r *reporter) Detail(format string, a ...any) {
	fmt.Fprintf(r.out, "   %s\n", fmt.Sprintf(format, a...))
}

func (r *reporter) Line(format string, a ...any) { fmt.Fprintf(r.out, format+"\n", a...) }

func (r *reporter) Blank() { fmt.Fprintln(r.out) }

func (r *reporter) Rule() { fmt.Fprintln(r.out, strings.Repeat("=", ruleWidth)) }

func (r *reporter) Banner(title string) {
	r.Rule()
	r.Line("  %s", title)
	r.Rule()
	r.Blank()
}
