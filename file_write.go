package lrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-lrc/lrc/internal/encoding"
)

// WriteFile serializes a document and writes it to path.
//
// This is an atomic operation: the bytes go to a temporary file first,
// then a rename replaces the target. If any step fails, the original
// file remains unchanged.
//
// Options can be provided to customize write behavior:
//
//	err := lrc.WriteFile("song.lrc", doc,
//	    lrc.WithBackup(".bak"),
//	    lrc.WithValidation(),
//	)
func WriteFile(path string, doc *Document, opts ...WriteOption) error {
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	text := doc.ToLRC()
	if options.crlf {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}

	data, err := encoding.Encode(text, options.encoding, options.bom)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	// Create the temp file in the target directory so the rename stays
	// on one filesystem.
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".lrc-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		backupPath := path + options.backupSuffix
		switch _, err := os.Stat(path); {
		case err == nil:
			if err := os.Rename(path, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			// A missing target just means nothing to back up; any
			// other Stat failure must not lead to a silent overwrite.
			return fmt.Errorf("create backup: %w", err)
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if options.validate {
		if err := validateWrittenFile(path, doc, options.encoding); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the written file and checks that it
// round-trips to the same serialized text.
func validateWrittenFile(path string, doc *Document, enc Encoding) error {
	written, err := Open(path, doc.Dialect(), WithEncoding(enc))
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if got, want := written.ToLRC(), doc.ToLRC(); got != want {
		return fmt.Errorf("re-serialized text does not match document")
	}

	return nil
}
