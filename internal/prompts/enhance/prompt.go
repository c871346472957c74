// Package enhance holds the prompt and response schema for the text
// enhancement LLM call.
package enhance

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/types"
)

//go:embed system.tmpl
var promptTemplate string

var tmpl = template.Must(template.New("enhance").Parse(promptTemplate))

// toneInstructions maps each tone directive to its instructional phrase.
var toneInstructions = map[types.Tone]string{
	types.ToneOriginal:     "Maintain the original tone and style",
	types.ToneProfessional: "Use a professional and formal tone",
	types.ToneCasual:       "Use a casual and friendly tone",
	types.ToneAcademic:     "Use an academic and scholarly tone",
}

// ToneInstruction resolves a tone directive to its instructional phrase.
// Unrecognized tones resolve to the original-tone phrase.
func ToneInstruction(tone types.Tone) string {
	if phrase, ok := toneInstructions[tone]; ok {
		return phrase
	}
	return toneInstructions[types.ToneOriginal]
}

// promptData is the template input for BuildPrompt.
type promptData struct {
	ToneInstruction  string
	Text             string
	ShowExplanations bool
}

// BuildPrompt constructs the instruction block sent to the LLM: role
// statement, resolved tone instruction, the verbatim original text, and the
// JSON-only output directive. The improvements field instruction is included
// only when explanations were requested.
func BuildPrompt(text string, tone types.Tone, showExplanations bool) string {
	var b strings.Builder
	err := tmpl.Execute(&b, promptData{
		ToneInstruction:  ToneInstruction(tone),
		Text:             text,
		ShowExplanations: showExplanations,
	})
	if err != nil {
		// The template is embedded and parsed at init; execution over plain
		// strings cannot fail. Fall back to the bare text regardless.
		return text
	}
	return b.String()
}
