package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raine/wishlist/config"
	"github.com/raine/wishlist/internal/category"
	"github.com/raine/wishlist/internal/listview"
)

func formatText(text string, a ...any) string {
	return fmt.Sprintf(strings.TrimSpace(dedent.Dedent(text)), a...) + "\n"
}

type options struct {
	format string
	reg    *category.Registry
}

func newRootCmd() *cobra.Command {
	opts := &options{reg: category.Default()}

	root := &cobra.Command{
		Use:           "wishlist-categories",
		Short:         "Inspect and resolve wishlist purpose categories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.format = config.NormalizeFormat(opts.format)
		},
	}
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", config.OutputFormat(), "Output format: text, json or yaml")

	root.AddCommand(
		newListCmd(opts),
		newResolveCmd(opts),
		newTextCmd(opts),
		newRouteCmd(opts),
		newIDCmd(opts),
	)
	return root
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := opts.reg.Categories()
			if opts.format != config.FormatText {
				return encode(cmd.OutOrStdout(), opts.format, cats)
			}
			for _, c := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", c.ID, c.Label, c.Route)
			}
			return nil
		},
	}
}

type resolution struct {
	Path       string `json:"path" yaml:"path"`
	Category   string `json:"category" yaml:"category"`
	Search     string `json:"search" yaml:"search"`
	All        bool   `json:"all" yaml:"all"`
	Known      bool   `json:"known" yaml:"known"`
	CategoryID *int   `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty"`
}

func resolvePath(reg *category.Registry, path string) resolution {
	p := listview.Parse(path)
	f := p.Filter(reg)
	r := resolution{
		Path:     p.Path(),
		Category: p.Category,
		Search:   p.Search,
		All:      f.All,
		Known:    f.Known,
	}
	if f.Known && !f.All {
		id := f.CategoryID
		r.CategoryID = &id
		r.Label = reg.Label(id)
	}
	return r
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a list view path to its category filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := resolvePath(opts.reg, args[0])
			log.Debug().Str("path", args[0]).Bool("known", r.Known).Msg("resolved list view path")

			if opts.format != config.FormatText {
				return encode(cmd.OutOrStdout(), opts.format, r)
			}

			filter := "all categories"
			switch {
			case !r.Known:
				filter = "unknown category"
			case !r.All:
				filter = fmt.Sprintf("%d (%s)", *r.CategoryID, r.Label)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatText(`
				path:     %s
				category: %s
				search:   %s
				filter:   %s
			`, r.Path, r.Category, r.Search, filter))
			return nil
		},
	}
}

// parseOptionalID treats a missing or non-numeric argument as an absent id.
func parseOptionalID(args []string) *int {
	if len(args) == 0 {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		log.Debug().Str("arg", args[0]).Msg("not a category id, using default")
		return nil
	}
	return &id
}

func newTextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "text [id]",
		Short: "Print the display label for a category id",
		Args:  cobra.MaximumNArgs(1),

		// Ids may be negative, so "-1" must reach RunE as an argument.
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), opts.reg.TextFor(parseOptionalID(args)))
			return nil
		},
	}
}

func newRouteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "route [id]",
		Short: "Print the route token for a category id",
		Args:  cobra.MaximumNArgs(1),

		// Ids may be negative, so "-1" must reach RunE as an argument.
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), opts.reg.RouteFor(parseOptionalID(args)))
			return nil
		},
	}
}

func newIDCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "id <route>",
		Short: "Print the category id for a route token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := opts.reg.IDFor(args[0])
			if !ok {
				return fmt.Errorf("unknown category route %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
