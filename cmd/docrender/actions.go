package docrender

import (
	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/config"
	"github.com/arthur-debert/docrender/pkg/ui"
	"github.com/spf13/cobra"
)

func newActionsCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "actions",
		Short: MsgActionsShort,
		Long:  MsgActionsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["render.format"] = format
			}
			cfg, err := config.Load(config.Options{File: root.configFile, Overrides: overrides})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			kind, err := ui.ResolveFormat(cfg.Render.Format, out)
			if err != nil {
				return err
			}
			reg, err := buildRegistry(cfg, kind)
			if err != nil {
				return err
			}

			described := backend.Describe(reg)
			rows := make([][]string, 0, len(described))
			for _, d := range described {
				rows = append(rows, []string{d[0], d[1]})
			}
			return ui.Table(out, []string{"Command", "Action"}, rows)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.AutoFormat, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}
