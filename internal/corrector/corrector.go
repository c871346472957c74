// Package corrector implements the deterministic rule-based fallback for the
// enhancement pipeline. It applies an ordered table of regex correction rules
// to the input text and reports which rules fired, without any natural
// language understanding.
package corrector

import (
	"log/slog"
	"strings"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/types"
)

// Corrector applies the rule table to input text. It is immutable after
// construction and safe for concurrent use.
type Corrector struct {
	rules []compiledRule
}

// New creates a Corrector from the given rule table. Malformed rules are
// logged and skipped rather than failing construction.
func New(rules []Rule, logger *slog.Logger) *Corrector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Corrector{rules: compileRules(rules, logger)}
}

// NewDefault creates a Corrector with the default rule table.
func NewDefault(logger *slog.Logger) *Corrector {
	return New(DefaultRules(), logger)
}

// Correct applies every rule, in declaration order, to the current text.
// Each rule is matched against the output of the previous rule, so earlier
// fixes cascade into later matches. Improvements are recorded in discovery
// order, deduplicated case-insensitively by their original span, and capped
// at types.MaxImprovements. Tone is accepted for interface symmetry with the
// LLM path but has no effect here.
func (c *Corrector) Correct(text string, _ types.Tone, showExplanations bool) types.EnhancementResult {
	corrected := text
	improvements := []types.Improvement{}
	seen := make(map[string]struct{})

	for _, rule := range c.rules {
		if showExplanations {
			for _, original := range rule.re.FindAllString(corrected, -1) {
				if original == "" {
					continue
				}
				fixed := rule.re.ReplaceAllString(original, rule.replacement)
				if fixed == original {
					continue
				}
				key := strings.ToLower(original)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				improvements = append(improvements, types.Improvement{
					Original: original,
					Fixed:    fixed,
					Reason:   rule.reason,
				})
			}
		}

		corrected = rule.re.ReplaceAllString(corrected, rule.replacement)
	}

	if len(improvements) > types.MaxImprovements {
		improvements = improvements[:types.MaxImprovements]
	}

	return types.EnhancementResult{
		CorrectedText: strings.TrimSpace(corrected),
		Improvements:  improvements,
	}
}
