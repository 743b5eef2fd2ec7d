// Package build validates a catalog and writes its documentation pages.
package build

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mugiliam/labcatalog/internal/apperrors"
	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/mugiliam/labcatalog/internal/render"
	"github.com/rs/zerolog/log"
)

const IndexFile = "index.md"

var ErrUnableToWrite apperrors.Error = apperrors.New("unable to write catalog documentation").SetExpandError(true)

type Options struct {
	OutputDir   string
	Strict      bool
	CheckImages bool
}

type Result struct {
	Catalog *catalog.Catalog
	Report  *catalog.Report
	// Files lists the written pages, index last.
	Files []string
}

// Run loads the catalog documents in inputs, reports validation issues and
// writes one markdown page per document plus an index. Nothing is written
// when validation fails. The Result is returned even on validation failure so
// callers can show the report.
func Run(ctx context.Context, opts Options, inputs ...string) (*Result, apperrors.Error) {
	c, err := catalog.Load(ctx, inputs...)
	if err != nil {
		return nil, err
	}
	res := &Result{Catalog: c}

	res.Report = c.Validate(ctx, catalog.ValidateOptions{CheckImages: opts.CheckImages})
	res.Report.Log(ctx)
	if err := res.Report.Err(opts.Strict); err != nil {
		return res, err
	}

	files, err := Write(ctx, c, opts.OutputDir)
	if err != nil {
		return res, err
	}
	res.Files = files
	log.Ctx(ctx).Info().
		Str("output", opts.OutputDir).
		Int("pages", len(files)).
		Int("warnings", len(res.Report.Warnings())).
		Msg("catalog documentation written")
	return res, nil
}

// Write renders every document of c into dir.
func Write(ctx context.Context, c *catalog.Catalog, dir string) ([]string, apperrors.Error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ErrUnableToWrite.Err(err)
	}

	docs := c.Documents()
	pages := make([]render.Page, 0, len(docs))
	files := make([]string, 0, len(docs)+1)
	for _, d := range docs {
		pages = append(pages, d)
		p := filepath.Join(dir, d.Name()+".md")
		if err := writeFile(p, func(f *os.File) error { return render.Markdown(f, d) }); err != nil {
			return nil, err
		}
		log.Ctx(ctx).Debug().Str("catalog", d.Name()).Str("file", p).Msg("wrote catalog page")
		files = append(files, p)
	}

	p := filepath.Join(dir, IndexFile)
	if err := writeFile(p, func(f *os.File) error { return render.Index(f, pages) }); err != nil {
		return nil, err
	}
	return append(files, p), nil
}

func writeFile(path string, fn func(f *os.File) error) apperrors.Error {
	f, err := os.Create(path)
	if err != nil {
		return ErrUnableToWrite.Err(err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return ErrUnableToWrite.Err(err)
	}
	if err := f.Close(); err != nil {
		return ErrUnableToWrite.Err(err)
	}
	return nil
}
