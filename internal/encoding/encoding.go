// Package encoding detects and converts the text encodings lyric files
// ship in.
//
// LRC files in the wild are mostly UTF-8, but exports from older players
// arrive as UTF-16 with a byte order mark, as GBK, or as Shift-JIS.
// Detection follows the usual chain: BOM first, UTF-8 validation next,
// GBK as the final fallback. Shift-JIS cannot be told apart from GBK by
// sniffing and is only used when a caller asks for it.
package encoding

import (
	"bytes"
	"fmt"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies a supported lyric file encoding.
type Encoding int

const (
	// Auto sniffs the encoding from the raw bytes.
	Auto Encoding = iota
	// UTF8 is plain UTF-8, with or without a BOM.
	UTF8
	// UTF16LE is little-endian UTF-16.
	UTF16LE
	// UTF16BE is big-endian UTF-16.
	UTF16BE
	// GBK covers simplified Chinese exports (GB2312 files decode as GBK).
	GBK
	// ShiftJIS covers Japanese exports. Never auto-detected.
	ShiftJIS
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case Auto:
		return "auto"
	case UTF8:
		return "utf-8"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case GBK:
		return "gbk"
	case ShiftJIS:
		return "shift-jis"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect sniffs the encoding of raw file bytes. It never returns Auto or
// ShiftJIS: without a BOM, bytes that are not valid UTF-8 are assumed to
// be GBK.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case utf8.Valid(data):
		return UTF8
	default:
		return GBK
	}
}

// Decode converts raw file bytes to a UTF-8 string. Auto sniffs first;
// any BOM is stripped. The encoding actually used is returned alongside
// the text.
func Decode(data []byte, enc Encoding) (string, Encoding, error) {
	if enc == Auto {
		enc = Detect(data)
	}

	switch enc {
	case UTF8:
		return string(bytes.TrimPrefix(data, bomUTF8)), UTF8, nil
	case UTF16LE:
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		decoded, err := decoder.Bytes(bytes.TrimPrefix(data, bomUTF16LE))
		if err != nil {
			return "", enc, fmt.Errorf("decode utf-16le: %w", err)
		}
		return string(decoded), UTF16LE, nil
	case UTF16BE:
		decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		decoded, err := decoder.Bytes(bytes.TrimPrefix(data, bomUTF16BE))
		if err != nil {
			return "", enc, fmt.Errorf("decode utf-16be: %w", err)
		}
		return string(decoded), UTF16BE, nil
	case GBK:
		decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
		if err != nil {
			return "", enc, fmt.Errorf("decode gbk: %w", err)
		}
		return string(decoded), GBK, nil
	case ShiftJIS:
		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
		if err != nil {
			return "", enc, fmt.Errorf("decode shift-jis: %w", err)
		}
		return string(decoded), ShiftJIS, nil
	default:
		return "", enc, fmt.Errorf("unknown encoding %s", enc)
	}
}

// Encode converts UTF-8 text to raw file bytes in the given encoding.
// Auto means UTF-8. withBOM prepends a byte order mark for the Unicode
// encodings and is ignored for GBK and Shift-JIS, which have none.
func Encode(text string, enc Encoding, withBOM bool) ([]byte, error) {
	switch enc {
	case Auto, UTF8:
		if withBOM {
			return append(slices.Clone(bomUTF8), text...), nil
		}
		return []byte(text), nil
	case UTF16LE, UTF16BE:
		endianness := unicode.LittleEndian
		if enc == UTF16BE {
			endianness = unicode.BigEndian
		}
		bomPolicy := unicode.IgnoreBOM
		if withBOM {
			bomPolicy = unicode.UseBOM
		}
		encoded, err := unicode.UTF16(endianness, bomPolicy).NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", enc, err)
		}
		return encoded, nil
	case GBK:
		encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("encode gbk: %w", err)
		}
		return encoded, nil
	case ShiftJIS:
		encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("encode shift-jis: %w", err)
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf("unknown encoding %s", enc)
	}
}
