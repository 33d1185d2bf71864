package cmd

import (
	"path/filepath"

	"github.com/itsmostafa/mdbook-summary-generate/internal/config"
	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
	"github.com/itsmostafa/mdbook-summary-generate/internal/preprocessor"
	"github.com/itsmostafa/mdbook-summary-generate/internal/render"
	"github.com/spf13/cobra"
)

var outlineFormat string

var outlineCmd = &cobra.Command{
	Use:   "outline [book-dir]",
	Short: "Print the outline generated for a book",
	Long: `Generate the outline for the book in book-dir (default: the current directory)
without running mdBook. Settings are read from book-dir/book.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ValidateFormat(outlineFormat)
		if err != nil {
			return err
		}

		bookDir := "."
		if len(args) == 1 {
			bookDir = args[0]
		}

		cfg, err := config.Load(bookDir)
		if err != nil {
			return err
		}
		src := cfg.SourceDir(bookDir)

		builder := outline.NewBuilder(cfg.OutlineOptions(preprocessor.Name)).WithLogger(logger)
		items, err := builder.Generate(src)
		if err != nil {
			return err
		}

		title := cfg.Book.Title
		if title == "" {
			abs, _ := filepath.Abs(bookDir)
			title = filepath.Base(abs)
		}

		out := cmd.OutOrStdout()
		if err := render.Write(out, format, title, items); err != nil {
			return err
		}
		if format == render.FormatTree {
			render.FormatSummary(out, src, items)
		}
		return nil
	},
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineFormat, "format", "f", string(render.FormatTree), "Output format (tree, json, yaml)")
	rootCmd.AddCommand(outlineCmd)
}
