package types

// Cue is one entry of a document's flattened playback view: a timestamp
// and the full text shown at that instant. Word-level timing is collapsed;
// a line with several leading timestamps yields one cue per timestamp.
type Cue struct {
	Time Time   `json:"time"`
	Text string `json:"text"`
}
