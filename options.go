package lrc

// Option configures behavior when parsing or opening lyric files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	doc, err := lrc.Open("song.lrc", lrc.DialectStandard,
//	    lrc.WithStrictParsing(),
//	    lrc.WithEncoding(lrc.EncodingShiftJIS),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for parsing and opening files.
type parseOptions struct {
	strictParsing  bool     // Fail on any warning
	ignoreWarnings bool     // Suppress all warnings
	encoding       Encoding // Input encoding for Open (Auto = sniff)
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		encoding:       EncodingAuto,
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, lrc keeps parsing when it encounters a malformed line,
// dropping the line and recording a Warning on the document.
//
// With strict parsing enabled, the first dropped line fails the whole
// parse.
//
// Example:
//
//	doc, err := lrc.ParseStandard(text, lrc.WithStrictParsing())
//	// err != nil if ANY line was dropped
func WithStrictParsing() Option {
	return func(o *parseOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about dropped lines are collected on the
// document. This option discards them.
//
// Use this when you only care about the lines that did parse.
//
// Example:
//
//	doc, err := lrc.ParseStandard(text, lrc.WithIgnoreWarnings())
//	// doc.Warnings() will always be empty
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithEncoding forces the input encoding when opening a file.
//
// By default the encoding is sniffed from the raw bytes (BOM, then
// UTF-8 validation, then GBK). Sniffing cannot distinguish Shift-JIS
// from GBK, so Japanese exports need this option.
//
// Example:
//
//	doc, err := lrc.Open("song.lrc", lrc.DialectEnhanced,
//	    lrc.WithEncoding(lrc.EncodingShiftJIS),
//	)
func WithEncoding(enc Encoding) Option {
	return func(o *parseOptions) {
		o.encoding = enc
	}
}
