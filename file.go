package lrc

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-lrc/lrc/internal/encoding"
)

// Open reads a lyric file, decodes it, and parses it with the given
// dialect's grammar.
//
// The encoding is sniffed from the raw bytes unless WithEncoding forces
// one: a BOM wins, then valid UTF-8, then GBK as the fallback for legacy
// exports. The decoded text then goes through Parse, so the fail-soft
// warning policy applies.
//
// Options can be provided to customize behavior:
//
//	doc, err := lrc.Open("song.lrc", lrc.DialectStandard,
//	    lrc.WithStrictParsing(),
//	)
//
// Example:
//
//	doc, err := lrc.Open("song.lrc", lrc.DialectStandard)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", doc.Meta().Artist, doc.Meta().Title)
func Open(path string, dialect Dialect, opts ...Option) (*Document, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	text, _, err := encoding.Decode(data, options.encoding)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return parse(text, dialect, options)
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks the context before
// starting; a single file parses in one pass with no unbounded waits, so
// there is nothing further to interrupt.
func OpenContext(ctx context.Context, path string, dialect Dialect, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, dialect, opts...)
}

// OpenMany opens multiple lyric files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. Every
// document is independent; no state is shared between goroutines.
//
// If any file fails to open, OpenMany returns the first error and no
// documents.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	docs, err := lrc.OpenMany(ctx, lrc.DialectStandard, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, doc := range docs {
//		fmt.Printf("%s: %d lines\n", doc.Meta().Title, doc.Len())
//	}
func OpenMany(ctx context.Context, dialect Dialect, paths []string, opts ...Option) ([]*Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Document, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			doc, err := Open(path, dialect, opts...)
			if err != nil {
				return err
			}

			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
