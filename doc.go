// Package lrc parses, represents, and serializes LRC lyric files.
//
// lrc handles both dialects of the format with one API: standard LRC
// (one timestamp per line) and enhanced LRC (per-word timestamps inside
// a line, plus repeated leading timestamps for duplicated segments).
//
// # Quick Start
//
// Parsing lyric text:
//
//	doc, err := lrc.ParseStandard(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(doc.Meta().Title)
//	for _, line := range doc.Lines() {
//		fmt.Println(line)
//	}
//
// Or straight from a file, with encoding detection:
//
//	doc, err := lrc.Open("song.lrc", lrc.DialectStandard)
//
// # Dialects
//
//   - Standard: `[mm:ss.xx]lyric text`, centisecond timestamps
//   - Enhanced: `[mm:ss.xxx]word[mm:ss.xxx]word...`, millisecond
//     timestamps, with optional repeated leading tags for choruses
//
// The dialect is fixed by the entry point you call; there is no
// auto-detection between the two grammars.
//
// # Philosophy
//
// lrc embodies three core principles:
//
// 1. Graceful Degradation: real-world lyric files are messy. Document
// parsing never fails on a malformed line; the line is dropped and a
// Warning records what was skipped. Entity constructors (ParseTime,
// ParseLyricLine, ParseEnhancedLine) are the opposite: they fail fast
// with typed errors, for callers that want strict validation.
//
// 2. Round-Trip Fidelity: parsing canonical LRC text and re-serializing
// it yields byte-identical output. Unknown metadata tags, duplicate
// timestamps, and zero-duration word tags all survive the trip.
//
// 3. Zero Surprises: documents serialize in insertion order, timestamps
// render at their dialect's precision, and metadata emits in one fixed
// order so output is deterministic.
//
// # Architecture
//
// The library uses a layered architecture:
//
//	[Document]        - Entry point via Parse/Open
//	  ├─ [Meta]       - Header tags (title, artist, unknown tags)
//	  ├─ [Line]       - LyricLine | EnhancedLine | CombinedLine
//	  └─ [Warning]    - Non-fatal issues from parsing
//
// Dialect-specific parsers implement a common interface and register
// themselves, so adding a dialect never changes the public API.
//
// # Advanced Usage
//
// Inspect word timing in an enhanced line:
//
//	doc, _ := lrc.ParseEnhanced(text)
//	for _, line := range doc.Lines() {
//		if el, ok := line.(lrc.EnhancedLine); ok {
//			for _, tag := range el.Tags {
//				fmt.Printf("%s %q\n", tag.Time, tag.Text)
//			}
//		}
//	}
//
// Parse many files concurrently:
//
//	docs, err := lrc.OpenMany(ctx, lrc.DialectStandard, paths)
//
// Write a document back out, atomically:
//
//	err := lrc.WriteFile("song.lrc", doc, lrc.WithBOM())
package lrc
