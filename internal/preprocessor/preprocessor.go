// Package preprocessor plugs the outline builder into the mdBook
// preprocessor protocol.
package preprocessor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/itsmostafa/mdbook-summary-generate/internal/mdbook"
	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
	"github.com/itsmostafa/mdbook-summary-generate/internal/render"
)

// Name is the preprocessor name, which is also the key of its
// [preprocessor.<name>] configuration table.
const Name = "summary-generate"

// UnsupportedRenderer is the one renderer name the preprocessor refuses.
// It exists so hosts can exercise the unsupported path.
const UnsupportedRenderer = "not-supported"

// Preprocessor is the behavior the host expects from a preprocessor.
type Preprocessor interface {
	// Name returns the preprocessor name
	Name() string

	// Run transforms the book for the given context
	Run(ctx *mdbook.Context, book *mdbook.Book) (*mdbook.Book, error)

	// SupportsRenderer reports whether the preprocessor can run for a renderer
	SupportsRenderer(renderer string) bool
}

// Ensure SummaryGenerate implements the interface.
var _ Preprocessor = (*SummaryGenerate)(nil)

// SummaryGenerate replaces the book's sections with an outline generated
// from the source directory.
type SummaryGenerate struct {
	log *slog.Logger
}

// New creates the preprocessor. A nil logger discards diagnostics.
func New(log *slog.Logger) *SummaryGenerate {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SummaryGenerate{log: log}
}

func (s *SummaryGenerate) Name() string {
	return Name
}

// Run walks the source directory named by the context and replaces
// book.Sections with the result. Every other part of the book is left as
// received.
func (s *SummaryGenerate) Run(ctx *mdbook.Context, book *mdbook.Book) (*mdbook.Book, error) {
	src := ctx.Config.SourceDir(ctx.Root)
	s.log.Debug("generating outline", "src", src, "renderer", ctx.Renderer)

	builder := outline.NewBuilder(ctx.Config.OutlineOptions(s.Name())).WithLogger(s.log)
	items, err := builder.Generate(src)
	if err != nil {
		return nil, fmt.Errorf("failed to generate outline: %w", err)
	}

	book.Sections = mdbook.FromOutline(items)
	s.log.Debug("outline generated", "sections", len(book.Sections))
	return book, nil
}

func (s *SummaryGenerate) SupportsRenderer(renderer string) bool {
	return renderer != UnsupportedRenderer
}

// Handle runs one preprocessing exchange: it reads the host input from in,
// warns on warn when the host version is incompatible, runs pre and writes
// the resulting book to out. Nothing is written to out on error.
func Handle(pre Preprocessor, in io.Reader, out, warn io.Writer) error {
	ctx, book, err := mdbook.ParseInput(in)
	if err != nil {
		return err
	}

	compatible, err := mdbook.CheckVersion(ctx.MDBookVersion)
	if err != nil {
		return err
	}
	if !compatible {
		render.FormatVersionWarning(warn, pre.Name(), mdbook.CompatibleVersion, ctx.MDBookVersion)
	}

	processed, err := pre.Run(ctx, book)
	if err != nil {
		return err
	}
	return mdbook.WriteBook(out, processed)
}
