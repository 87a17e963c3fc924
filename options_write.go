package lrc

// WriteOption configures behavior when writing lyric files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := lrc.WriteFile("song.lrc", doc,
//	    lrc.WithBackup(".bak"),
//	    lrc.WithValidation(),
//	)
type WriteOption func(*writeOptions)

// writeOptions holds configuration for writing files.
type writeOptions struct {
	encoding     Encoding // Output encoding (Auto = UTF-8)
	bom          bool     // Prepend a byte order mark
	crlf         bool     // Terminate lines with \r\n
	backupSuffix string   // Suffix for backup file (e.g., ".bak")
	validate     bool     // Re-read after write to verify
}

// defaultWriteOptions returns the default configuration for writing.
func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		encoding:     EncodingAuto,
		bom:          false,
		crlf:         false,
		backupSuffix: "",
		validate:     false,
	}
}

// WithWriteEncoding sets the output encoding. The default is UTF-8.
//
// Example:
//
//	err := lrc.WriteFile("song.lrc", doc,
//	    lrc.WithWriteEncoding(lrc.EncodingUTF16LE),
//	)
func WithWriteEncoding(enc Encoding) WriteOption {
	return func(o *writeOptions) {
		o.encoding = enc
	}
}

// WithBOM prepends a byte order mark to the output.
//
// Some Windows players only detect Unicode lyric files by their BOM.
// Ignored for GBK and Shift-JIS output, which have no BOM.
//
// Example:
//
//	err := lrc.WriteFile("song.lrc", doc, lrc.WithBOM())
func WithBOM() WriteOption {
	return func(o *writeOptions) {
		o.bom = true
	}
}

// WithCRLF terminates output lines with \r\n instead of \n.
//
// Example:
//
//	err := lrc.WriteFile("song.lrc", doc, lrc.WithCRLF())
func WithCRLF() WriteOption {
	return func(o *writeOptions) {
		o.crlf = true
	}
}

// WithBackup creates a backup of the original file before writing.
//
// The backup file has the suffix appended to the original filename:
// WithBackup(".bak") preserves "song.lrc" as "song.lrc.bak". An existing
// backup is overwritten.
//
// Example:
//
//	err := lrc.WriteFile("song.lrc", doc, lrc.WithBackup(".bak"))
func WithBackup(suffix string) WriteOption {
	return func(o *writeOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After writing, the file is re-opened, parsed with the document's
// dialect, and re-serialized; the result must match what was written.
// This adds overhead but confirms the round trip survived the disk.
//
// Example:
//
//	err := lrc.WriteFile("song.lrc", doc, lrc.WithValidation())
func WithValidation() WriteOption {
	return func(o *writeOptions) {
		o.validate = true
	}
}
