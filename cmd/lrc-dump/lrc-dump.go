package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/go-lrc/lrc"
)

// Diagnostic tool to confirm what we're actually able to read from a
// lyric file: metadata, line structure, word timing, and what got dropped.
func main() {
	dialectName := flag.String("dialect", "standard", "LRC dialect: standard or enhanced")
	asJSON := flag.Bool("json", false, "dump the document as JSON")
	sortLines := flag.Bool("sort", false, "sort lines by start time before dumping")
	asCues := flag.Bool("cues", false, "dump the flattened playback cue list")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		info := lrc.GetVersionInfo()
		fmt.Printf("lrc-dump %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return
	}

	if flag.NArg() < 1 {
		fmt.Println("Usage: lrc-dump [-dialect standard|enhanced] [-json] [-sort] [-cues] <file.lrc>")
		os.Exit(1)
	}

	dialect, err := lrc.ParseDialect(*dialectName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := lrc.Open(flag.Arg(0), dialect)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range doc.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if *sortLines {
		doc.Sort()
	}

	switch {
	case *asJSON:
		dumpJSON(doc)
	case *asCues:
		dumpCues(doc)
	default:
		dumpDocument(doc)
	}
}

func dumpJSON(doc *lrc.Document) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dumpCues(doc *lrc.Document) {
	for _, cue := range doc.Cues() {
		fmt.Printf("%s  %s\n", cue.Time, cue.Text)
	}
}

func dumpDocument(doc *lrc.Document) {
	fmt.Printf("dialect: %s\n", doc.Dialect())

	if doc.Meta().Len() > 0 {
		fmt.Println("\nmetadata:")
		for key, value := range doc.Meta().All() {
			fmt.Printf("  %-12s %s\n", key, value)
		}
	}

	fmt.Printf("\nlines: %d\n", doc.Len())
	for i, line := range doc.Lines() {
		switch v := line.(type) {
		case lrc.LyricLine:
			fmt.Printf("  %3d  %s  %s\n", i, v.Time, v.Text)
		case lrc.EnhancedLine:
			fmt.Printf("  %3d  %s..%s  %s\n", i, v.StartTime(), v.EndTime(), v.Text())
			for _, start := range v.StartTimes {
				fmt.Printf("         start %s\n", start)
			}
			for _, tag := range v.Tags {
				fmt.Printf("         %s  %q\n", tag.Time, tag.Text)
			}
		case lrc.CombinedLine:
			fmt.Printf("  %3d  %s  combined (%d members)\n", i, v.StartTime(), len(v.Lines()))
			for _, member := range v.Lines() {
				fmt.Printf("         %s\n", member)
			}
		default:
			fmt.Printf("  %3d  %s\n", i, line)
		}
	}
}
