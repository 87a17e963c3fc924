// Package scan provides low-level tokenizers for bracketed LRC tags.
package scan

import "regexp"

// Tag is one bracketed time tag plus the raw text that follows it, up to
// the next tag or the end of the line. Text is sliced verbatim from the
// input, so stray brackets inside a fragment survive.
type Tag struct {
	Value string // timestamp text between the brackets, e.g. "00:19.845"
	Text  string // fragment owned by this tag
}

var (
	// Time tags: minutes are unbounded digits, seconds one or two digits,
	// fraction one to three digits. Range checks happen at parse time.
	timeTagRe    = regexp.MustCompile(`\[(\d+:\d{1,2}\.\d{1,3})\]`)
	leadingTagRe = regexp.MustCompile(`^\[(\d+:\d{1,2}\.\d{1,3})\]`)

	// Metadata tags: letter-initial alphanumeric key, so a timestamp can
	// never be mistaken for a key. Matched at the start of the line only;
	// anything after the closing bracket is ignored.
	metaTagRe = regexp.MustCompile(`^\[([A-Za-z][A-Za-z0-9]*):([^\]]+)\]`)
)

// Tags returns every time tag in s paired with its trailing fragment.
// Text before the first tag belongs to no tag and is not returned.
func Tags(s string) []Tag {
	matches := timeTagRe.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return nil
	}

	tags := make([]Tag, 0, len(matches))
	for i, m := range matches {
		end := len(s)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		tags = append(tags, Tag{
			Value: s[m[2]:m[3]],
			Text:  s[m[1]:end],
		})
	}
	return tags
}

// Leading splits off a time tag at the very start of s. rest is everything
// after the closing bracket, verbatim.
func Leading(s string) (value, rest string, ok bool) {
	m := leadingTagRe.FindStringSubmatchIndex(s)
	if m == nil {
		return "", "", false
	}
	return s[m[2]:m[3]], s[m[1]:], true
}

// MetaTag splits a metadata header line into its key and value. The key's
// case is preserved; normalization is the caller's concern.
func MetaTag(s string) (key, value string, ok bool) {
	m := metaTagRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// HasTimeTag reports whether s starts with a time tag. Parsers use this to
// classify a physical line after the metadata check has failed.
func HasTimeTag(s string) bool {
	return leadingTagRe.MatchString(s)
}
