package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/morphed/internal/errors"
)

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes [code]",
		Short: "List error codes",
		Long: `List every error code morphed reports, or explain one.

Examples:
  morphed codes
  morphed codes M101`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				code := strings.ToUpper(args[0])
				tmpl, ok := errors.GetTemplate(code)
				if !ok {
					return errors.Newf(errors.CategoryCLI, "unknown error code %q", args[0]).
						WithSuggestion("Run morphed codes to list every code")
				}
				fmt.Fprintf(w, "%s (%s): %s\n", code, tmpl.Category, tmpl.Message)
				if tmpl.Detail != "" {
					fmt.Fprintf(w, "\n  %s\n", tmpl.Detail)
				}
				if tmpl.Suggestion != "" {
					fmt.Fprintf(w, "\n  Hint: %s\n", tmpl.Suggestion)
				}
				return nil
			}

			codes := errors.GetAllCodes()
			sort.Strings(codes)
			for _, code := range codes {
				tmpl, _ := errors.GetTemplate(code)
				fmt.Fprintf(w, "  %-6s %-18s %s\n", code, tmpl.Category, tmpl.Message)
			}
			return nil
		},
	}
}
