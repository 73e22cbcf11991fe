package model

// Request and response bodies for the serve API.

type ChartRequest struct {
	// Source is the chart text to process.
	Source string `json:"source"`
	// Key names the target key for /transpose, e.g. "Bb".
	Key string `json:"key,omitempty"`
	// Inline selects bracketed output; false stacks chords above lyrics.
	Inline bool `json:"inline"`
	// Extensions enables chords-over-lyrics parsing of the source.
	Extensions bool `json:"extensions"`
}

type ChartResponse struct {
	Output string `json:"output"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
