package lrc

import (
	"github.com/go-lrc/lrc/internal/encoding"
)

// Encoding is an alias to encoding.Encoding.
// Re-exporting from internal/encoding to keep one public API surface.
type Encoding = encoding.Encoding

const (
	// EncodingAuto sniffs the encoding from the raw bytes: BOM first,
	// UTF-8 validation next, GBK as the final fallback.
	EncodingAuto = encoding.Auto

	// EncodingUTF8 is plain UTF-8, with or without a BOM.
	EncodingUTF8 = encoding.UTF8

	// EncodingUTF16LE is little-endian UTF-16.
	EncodingUTF16LE = encoding.UTF16LE

	// EncodingUTF16BE is big-endian UTF-16.
	EncodingUTF16BE = encoding.UTF16BE

	// EncodingGBK covers simplified Chinese exports.
	EncodingGBK = encoding.GBK

	// EncodingShiftJIS covers Japanese exports. Never auto-detected;
	// pass it explicitly with WithEncoding when you know the source.
	EncodingShiftJIS = encoding.ShiftJIS
)

// DetectEncoding sniffs the encoding of raw lyric file bytes. It never
// returns EncodingAuto or EncodingShiftJIS.
func DetectEncoding(data []byte) Encoding {
	return encoding.Detect(data)
}
