package main

import (
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/docrender/cmd/docrender"
	"github.com/arthur-debert/docrender/internal/version"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/ui"
)

func generate(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "DOCRENDER",
		Section: "1",
		Source:  "docrender " + version.Version,
		Manual:  "docrender manual",
	}
	if err := doc.GenMan(docrender.NewRootCmd(), header, w); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "cannot generate man page")
	}
	return nil
}

func main() {
	if err := generate(os.Stdout); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
