package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/morphed"
	"github.com/vango-dev/morphed/internal/config"
	"github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/render"
	"github.com/vango-dev/morphed/pkg/vdom"
)

func ignoreCmd(root *rootFlags) *cobra.Command {
	var (
		in         string
		configPath string
		ignoreAttr string
		prefix     string
		useUUID    bool
	)

	cmd := &cobra.Command{
		Use:   "ignore",
		Short: "Give ids to ignored elements",
		Long: `Give every ignored element below the root that has no id a generated
one, and print the document. Existing ids are kept.

The id scheme comes from the ids and idPrefix settings of the configuration
file. Flags override the file.

Examples:
  morphed ignore --in page.html
  morphed ignore --in page.html --uuid --prefix keep-`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), root.verbose)
			cfg, err := loadConfig(configPath, logger, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("ignore-attr") {
					cfg.IgnoredAttribute = ignoreAttr
				}
				if flags.Changed("prefix") {
					cfg.IDPrefix = prefix
				}
				if flags.Changed("uuid") {
					cfg.IDs = config.IDsCounter
					if useUUID {
						cfg.IDs = config.IDsUUID
					}
				}
			})
			if err != nil {
				return err
			}

			doc, err := parseFile(in)
			if err != nil {
				return err
			}

			assigned := vdom.AssignIDs(doc, cfg.IgnoredAttribute, cfg.IDSource())
			logger.Debug("morphed: assigned ids",
				"attribute", cfg.IgnoredAttribute,
				"ids", cfg.IDs,
				"count", len(assigned),
			)

			w := cmd.OutOrStdout()
			if err := render.NewRenderer(cfg.RendererConfig()).RenderToWriter(w, doc); err != nil {
				return errors.FromError(err, "M302")
			}
			fmt.Fprintln(w)
			success(cmd.ErrOrStderr(), "assigned %d id(s)", len(assigned))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "HTML document")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file")
	cmd.Flags().StringVar(&ignoreAttr, "ignore-attr", morphed.DefaultIgnoredAttribute, "Attribute marking ignored elements")
	cmd.Flags().StringVar(&prefix, "prefix", morphed.DefaultIDPrefix, "Prefix for generated ids")
	cmd.Flags().BoolVar(&useUUID, "uuid", false, "Generate UUID ids instead of sequential ones")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
