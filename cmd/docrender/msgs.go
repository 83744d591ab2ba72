package docrender

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Render command markup and templates as text, terminal output or HTML"
	MsgRenderShort     = "Render a template or markup document"
	MsgActionsShort    = "List the commands a backend understands"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgVersionFormat = "docrender version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrReadInput  = "cannot read input %s"
	MsgErrNoCommand  = "no command specified"
	MsgErrBothInputs = "--markup and --template are mutually exclusive"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file (toml or yaml)"
	MsgFlagFormat   = "Output backend: auto, ascii, ansi or html"
	MsgFlagWidth    = "Line width; 0 disables wrapping"
	MsgFlagValues   = "Values file (yaml, toml or json)"
	MsgFlagDM       = "Show DM-only values"
	MsgFlagUnknown  = "Unknown commands: contents, drop or echo"
	MsgFlagStrip    = "Strip ANSI escape sequences from the output"
	MsgFlagMarkup   = "Read the input as markup instead of a template"
	MsgFlagTemplate = "Read the input as a template (default)"
	MsgFlagType     = "Entry type used to style labeled values"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/actions-long.txt
	msgActionsLongRaw string
	MsgActionsLong    = strings.TrimSpace(msgActionsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
