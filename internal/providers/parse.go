package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// NormalizeReply strips markdown code fences from a raw model reply and
// trims whitespace. The strip order is fixed: json-tagged leading fence,
// then generic leading fence, then trailing fence.
func NormalizeReply(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	}
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// ParseStructuredReply normalizes a raw model reply, validates it against
// the given JSON schema when one is provided, and unmarshals it into out.
// Any failure means the reply is unusable and the caller should treat the
// LLM path as unavailable.
func ParseStructuredReply(content, schemaJSON string, out any) error {
	normalized := NormalizeReply(content)
	if normalized == "" {
		return fmt.Errorf("empty model reply")
	}

	var doc any
	if err := json.Unmarshal([]byte(normalized), &doc); err != nil {
		return fmt.Errorf("model reply is not valid JSON: %w", err)
	}

	if schemaJSON != "" {
		if err := validateAgainstSchema(schemaJSON, doc); err != nil {
			return err
		}
	}

	if err := json.Unmarshal([]byte(normalized), out); err != nil {
		return fmt.Errorf("model reply does not match result shape: %w", err)
	}
	return nil
}

func validateAgainstSchema(schemaJSON string, doc any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("reply.json", strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("failed to load reply schema: %w", err)
	}
	schema, err := compiler.Compile("reply.json")
	if err != nil {
		return fmt.Errorf("failed to compile reply schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("model reply does not match schema: %w", err)
	}
	return nil
}
