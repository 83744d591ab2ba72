// Package ui holds the terminal-facing helpers of the docrender CLI:
// backend detection, escape stripping, tables and error reporting.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/pterm/pterm"
)

// StripWriter removes ANSI escape sequences from everything written
// through it.
type StripWriter struct {
	out io.Writer
}

// NewStripWriter wraps out.
func NewStripWriter(out io.Writer) *StripWriter {
	return &StripWriter{out: out}
}

// Write strips p and writes the rest. It reports len(p) on success so
// callers see their whole buffer consumed.
func (w *StripWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(w.out, ansi.Strip(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Output returns out, wrapped in a StripWriter when strip is set.
func Output(out io.Writer, strip bool) io.Writer {
	if strip {
		return NewStripWriter(out)
	}
	return out
}

// Table renders rows under a header row with pterm.
func Table(out io.Writer, header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	text, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrWrite, "cannot render table")
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

// PrintError writes err after a label in the theme's Error style.
func PrintError(out io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(out, "%s %s\n", styles.GetStyle("Error").Render("Error:"), err.Error())
}
