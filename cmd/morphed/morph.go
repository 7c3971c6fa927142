package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/morphed"
	"github.com/vango-dev/morphed/internal/config"
	"github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/render"
	"github.com/vango-dev/morphed/pkg/vdom"
)

type morphFlags struct {
	live         string
	candidate    string
	configPath   string
	ignoreAttr   string
	childrenOnly bool
	patches      bool
	minify       bool
	pretty       bool
}

func morphCmd(root *rootFlags) *cobra.Command {
	var f morphFlags

	cmd := &cobra.Command{
		Use:   "morph",
		Short: "Reconcile a live document with a candidate",
		Long: `Reconcile the live document with the candidate document and print the
result. Elements carrying the ignored attribute in the live document keep
their content.

Settings are read from --config, or from the nearest morphed.json /
morphed.yaml at or above the current directory. Flags override the file.

Examples:
  morphed morph --live page.html --candidate next.html
  morphed morph --live page.html --candidate next.html --patches
  morphed morph --live page.html --candidate next.html --ignore-attr data-keep`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), root.verbose)
			cfg, err := loadConfig(f.configPath, logger, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("ignore-attr") {
					cfg.IgnoredAttribute = f.ignoreAttr
				}
				if flags.Changed("children-only") {
					cfg.ChildrenOnly = f.childrenOnly
				}
				if flags.Changed("minify") {
					cfg.Render.Minify = f.minify
				}
				if flags.Changed("pretty") {
					cfg.Render.Pretty = f.pretty
				}
			})
			if err != nil {
				return err
			}
			return runMorph(cmd.OutOrStdout(), cfg, f, logger)
		},
	}

	cmd.Flags().StringVar(&f.live, "live", "", "Live HTML document")
	cmd.Flags().StringVar(&f.candidate, "candidate", "", "Candidate HTML document")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Configuration file")
	cmd.Flags().StringVar(&f.ignoreAttr, "ignore-attr", morphed.DefaultIgnoredAttribute, "Attribute marking ignored elements")
	cmd.Flags().BoolVar(&f.childrenOnly, "children-only", false, "Morph only the children of the root")
	cmd.Flags().BoolVar(&f.patches, "patches", false, "Also print the applied patches as JSON")
	cmd.Flags().BoolVar(&f.minify, "minify", false, "Minify the output")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Indent the output")
	_ = cmd.MarkFlagRequired("live")
	_ = cmd.MarkFlagRequired("candidate")

	return cmd
}

func runMorph(w io.Writer, cfg *config.Config, f morphFlags, logger *slog.Logger) error {
	live, err := parseFile(f.live)
	if err != nil {
		return err
	}
	candidate, err := parseFile(f.candidate)
	if err != nil {
		return err
	}

	var patches []vdom.Patch
	opts := append(cfg.ViewOptions(),
		morphed.WithLogger(logger),
		morphed.WithObserver(morphed.ObserverFunc(func(_ context.Context, r morphed.UpdateReport) {
			patches = append(patches, r.Patches...)
		})),
	)

	view, err := morphed.New(live, morphed.Render(func(morphed.State) *vdom.VNode {
		return candidate
	}), opts...)
	if err != nil {
		return err
	}

	if err := render.NewRenderer(cfg.RendererConfig()).RenderToWriter(w, view.Node()); err != nil {
		return errors.FromError(err, "M302")
	}
	fmt.Fprintln(w)

	if f.patches {
		data, err := vdom.MarshalPatches(patches)
		if err != nil {
			return errors.FromError(err, "M302")
		}
		fmt.Fprintln(w, string(data))
	}
	return nil
}
