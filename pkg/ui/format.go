package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// FormatAuto lets ResolveFormat pick a backend for the output.
const FormatAuto = "auto"

// ResolveFormat turns a configured format name into a backend. "auto" and
// the empty string are resolved with DetectFormat.
func ResolveFormat(name string, output io.Writer) (backend.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatAuto, "":
		return DetectFormat(output), nil
	default:
		return backend.ParseKind(name)
	}
}

// DetectFormat determines the backend matching a writer's capabilities:
// ANSI for a color terminal, ASCII for anything else.
func DetectFormat(output io.Writer) backend.Kind {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return backend.ASCII
	}

	file, ok := output.(*os.File)
	if !ok {
		return backend.ASCII
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return backend.ASCII
	}

	if termenv.NewOutput(file).Profile == termenv.Ascii {
		return backend.ASCII
	}
	return backend.ANSI
}
