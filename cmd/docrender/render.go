package docrender

import (
	"io"
	"os"

	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/config"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/domain"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"github.com/arthur-debert/docrender/pkg/styles"
	"github.com/arthur-debert/docrender/pkg/template"
	"github.com/arthur-debert/docrender/pkg/ui"
	"github.com/arthur-debert/docrender/pkg/values"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	markup    bool
	template  bool
	values    string
	format    string
	width     int
	dm        bool
	unknown   string
	strip     bool
	entryType string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "render [file|-]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.markup, "markup", false, MsgFlagMarkup)
	flags.BoolVar(&opts.template, "template", false, MsgFlagTemplate)
	flags.StringVar(&opts.values, "values", "", MsgFlagValues)
	flags.StringVarP(&opts.format, "format", "f", config.AutoFormat, MsgFlagFormat)
	flags.IntVarP(&opts.width, "width", "w", 0, MsgFlagWidth)
	flags.BoolVar(&opts.dm, "dm", false, MsgFlagDM)
	flags.StringVar(&opts.unknown, "unknown", "contents", MsgFlagUnknown)
	flags.BoolVar(&opts.strip, "strip", false, MsgFlagStrip)
	flags.StringVar(&opts.entryType, "type", "", MsgFlagType)

	cmd.MarkFlagsMutuallyExclusive("markup", "template")
	cmd.MarkFlagsMutuallyExclusive("markup", "values")
	_ = cmd.MarkFlagFilename("values", "yaml", "yml", "toml", "json", "jsonc")
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)
	_ = cmd.RegisterFlagCompletionFunc("unknown", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"contents", "drop", "echo"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func formatCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := []string{config.AutoFormat}
	for _, kind := range backend.Kinds() {
		names = append(names, string(kind))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// overrides turns the flags set on the command line into configuration
// keys, so they win over files and the environment.
func (o *renderOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["render.format"] = o.format
	}
	if flags.Changed("dm") {
		overrides["render.dm"] = o.dm
	}
	if flags.Changed("unknown") {
		overrides["render.unknown"] = o.unknown
	}
	return overrides
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, args []string) error {
	logger := logging.GetLogger("cli")

	if opts.width < 0 {
		return errors.Newf(errors.ErrInvalidInput, "--width must not be negative, got %d", opts.width)
	}

	cfg, err := config.Load(config.Options{File: root.configFile, Overrides: opts.overrides(cmd)})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	kind, err := ui.ResolveFormat(cfg.Render.Format, out)
	if err != nil {
		return err
	}

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg, kind)
	if err != nil {
		return err
	}
	docOpts := cfg.DocumentOptions(kind)
	docOpts.Registry = reg
	if cmd.Flags().Changed("width") {
		docOpts.Width = opts.width
	}
	doc, err := backend.NewDocument(docOpts)
	if err != nil {
		return err
	}

	node, err := opts.tree(input, cfg.Render.DM)
	if err != nil {
		return err
	}
	if err := render(doc, node); err != nil {
		return err
	}

	logger.Debug().
		Str("backend", string(kind)).
		Int("width", doc.Width()).
		Int("footnotes", len(doc.Footnotes())).
		Int("errors", len(doc.Errors())).
		Msg("Rendered document")

	return doc.Write(ui.Output(out, opts.strip))
}

func render(doc *document.Document, node command.Node) error {
	done := logging.LogOperationStart(logging.GetLogger("cli"), "render")
	defer done()
	return doc.Add(node)
}

// tree builds the command tree of the input: parsed directly with
// --markup, bound to the values file otherwise.
func (o *renderOptions) tree(input string, dm bool) (command.Node, error) {
	if o.markup {
		return command.Parse(input)
	}

	binder := &template.Binder{DM: dm, Type: o.entryType}
	if o.values != "" {
		source, err := values.Load(o.values)
		if err != nil {
			return nil, err
		}
		binder.Source = source
	}
	return binder.Bind(template.New(input))
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadInput, "from standard input")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadInput, args[0]).
			WithDetail("path", args[0])
	}
	return string(data), nil
}

// buildRegistry layers the configured entity catalog over kind's action
// table, using the configured theme.
func buildRegistry(cfg *config.Config, kind backend.Kind) (document.Registry, error) {
	settings := backend.Settings{LinkSuffix: cfg.HTML.LinkSuffix}
	if cfg.Styles.File != "" {
		theme, err := styles.LoadFile(cfg.Styles.File)
		if err != nil {
			return nil, err
		}
		settings.Theme = theme
	}

	catalog, err := loadCatalog(cfg.Domain.Catalog)
	if err != nil {
		return nil, err
	}
	return backend.Build(kind, settings, catalog.Layer(kind, cfg.Domain.BaseURL))
}

func loadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.Default()
	}
	return domain.LoadFile(path)
}
