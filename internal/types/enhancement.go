// Package types provides shared types used across multiple packages.
// This package has no dependencies on other skywrite packages to avoid import cycles.
package types

// Tone is a named writing-style directive passed to the correction pipeline.
type Tone string

const (
	// ToneOriginal keeps the original tone and style of the input text.
	ToneOriginal Tone = "original"
	// ToneProfessional requests a professional and formal tone.
	ToneProfessional Tone = "professional"
	// ToneCasual requests a casual and friendly tone.
	ToneCasual Tone = "casual"
	// ToneAcademic requests an academic and scholarly tone.
	ToneAcademic Tone = "academic"
)

// ParseTone converts a string to a Tone.
// Returns ToneOriginal if the string is not recognized.
func ParseTone(s string) Tone {
	switch Tone(s) {
	case ToneProfessional:
		return ToneProfessional
	case ToneCasual:
		return ToneCasual
	case ToneAcademic:
		return ToneAcademic
	default:
		return ToneOriginal
	}
}

// Improvement is a single reported edit: the original span, its replacement,
// and a human-readable reason.
type Improvement struct {
	Original string `json:"original"`
	Fixed    string `json:"fixed"`
	Reason   string `json:"reason"`
}

// MaxImprovements caps the number of improvements reported per result.
const MaxImprovements = 10

// EnhancementRequest is a request to correct and enhance a piece of text.
type EnhancementRequest struct {
	Text             string `json:"text"`
	Tone             Tone   `json:"tone,omitempty"`
	ShowExplanations bool   `json:"showExplanations"`
}

// EnhancementResult is the outcome of an enhancement request.
// CorrectedText is always present; for non-empty input it is never empty
// (worst case the trimmed input is returned unmodified). Improvements holds
// at most MaxImprovements entries and is empty when explanations were not
// requested. Error carries a diagnostic when the pipeline hit a terminal
// failure; the caller still receives usable text.
type EnhancementResult struct {
	CorrectedText string        `json:"correctedText"`
	Improvements  []Improvement `json:"improvements"`
	Error         string        `json:"error,omitempty"`
}
