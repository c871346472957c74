package providers

import (
	"strings"
	"testing"
)

func TestNormalizeReply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare json",
			content: `{"correctedText": "ok"}`,
			want:    `{"correctedText": "ok"}`,
		},
		{
			name:    "json fence",
			content: "```json\n{\"correctedText\": \"ok\"}\n```",
			want:    `{"correctedText": "ok"}`,
		},
		{
			name:    "generic fence",
			content: "```\n{\"correctedText\": \"ok\"}\n```",
			want:    `{"correctedText": "ok"}`,
		},
		{
			name:    "surrounding whitespace",
			content: "\n\n  ```json\n{\"a\": 1}\n```  \n",
			want:    `{"a": 1}`,
		},
		{
			name:    "leading fence only",
			content: "```json\n{\"a\": 1}",
			want:    `{"a": 1}`,
		},
		{
			name:    "trailing fence only",
			content: "{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
		{
			name:    "fences only",
			content: "```json\n```",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeReply(tt.content); got != tt.want {
				t.Errorf("NormalizeReply(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

const testSchema = `{
  "type": "object",
  "properties": {
    "correctedText": {"type": "string"},
    "improvements": {"type": "array"}
  }
}`

func TestParseStructuredReply(t *testing.T) {
	type reply struct {
		CorrectedText string `json:"correctedText"`
	}

	t.Run("valid reply", func(t *testing.T) {
		var out reply
		err := ParseStructuredReply("```json\n{\"correctedText\": \"Fixed text\"}\n```", testSchema, &out)
		if err != nil {
			t.Fatalf("ParseStructuredReply() error = %v", err)
		}
		if out.CorrectedText != "Fixed text" {
			t.Errorf("CorrectedText = %q, want %q", out.CorrectedText, "Fixed text")
		}
	})

	t.Run("missing fields pass schema", func(t *testing.T) {
		var out reply
		if err := ParseStructuredReply(`{}`, testSchema, &out); err != nil {
			t.Fatalf("ParseStructuredReply() error = %v, want nil for absent optional fields", err)
		}
		if out.CorrectedText != "" {
			t.Errorf("CorrectedText = %q, want empty", out.CorrectedText)
		}
	})

	t.Run("wrong field type fails schema", func(t *testing.T) {
		var out reply
		err := ParseStructuredReply(`{"correctedText": 42}`, testSchema, &out)
		if err == nil {
			t.Fatal("ParseStructuredReply() = nil, want schema error for numeric correctedText")
		}
		if !strings.Contains(err.Error(), "schema") {
			t.Errorf("error = %v, want schema validation failure", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		var out reply
		if err := ParseStructuredReply("not json at all", testSchema, &out); err == nil {
			t.Fatal("ParseStructuredReply() = nil, want error for non-JSON reply")
		}
	})

	t.Run("empty reply", func(t *testing.T) {
		var out reply
		if err := ParseStructuredReply("```json\n```", testSchema, &out); err == nil {
			t.Fatal("ParseStructuredReply() = nil, want error for empty reply")
		}
	})

	t.Run("no schema skips validation", func(t *testing.T) {
		var out reply
		if err := ParseStructuredReply(`{"correctedText": "ok"}`, "", &out); err != nil {
			t.Fatalf("ParseStructuredReply() error = %v", err)
		}
	})
}
