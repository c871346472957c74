package enhance

import "github.com/keertigurusiddanavar76-ops/skywrite/internal/types"

// ResultSchemaJSON is the JSON schema the LLM reply must satisfy. Neither
// field is required: an absent correctedText or improvements is defaulted by
// the orchestrator, but a wrong-typed field fails validation and routes the
// request to the local fallback.
const ResultSchemaJSON = `{
  "type": "object",
  "properties": {
    "correctedText": {
      "type": "string",
      "description": "The corrected and enhanced version of the text"
    },
    "improvements": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "original": {"type": "string"},
          "fixed": {"type": "string"},
          "reason": {"type": "string"}
        }
      },
      "description": "Specific improvements made, one entry per edit"
    }
  }
}`

// Result is the parsed shape of a successful enhancement reply.
type Result struct {
	CorrectedText string              `json:"correctedText"`
	Improvements  []types.Improvement `json:"improvements"`
}
