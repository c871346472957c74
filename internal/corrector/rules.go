package corrector

import (
	"log/slog"
	"regexp"
)

// Rule is one correction rule: a case-insensitive pattern, a replacement
// template (may use ${n} backreferences), and a human-readable reason.
type Rule struct {
	Pattern     string
	Replacement string
	Reason      string
}

// DefaultRules is the fixed, ordered rule table. Order matters: earlier rules
// may produce text that later rules also match (e.g. a capitalization fix
// before the spacing fix), so rules are applied in declaration order against
// the current text, never in parallel against the original.
func DefaultRules() []Rule {
	return []Rule{
		// Capitalization
		{`\bi\b`, "I", `Capitalization: pronoun "i" → "I"`},

		// Subject-verb agreement
		{`\b(he|she|it)\s+are\b`, "${1} is", `Subject-verb agreement: "are" → "is"`},
		{`\b(i|you|we|they|people)\s+is\b`, "${1} are", `Subject-verb agreement: "is" → "are"`},
		{`\b(he|she|it)\s+have\b`, "${1} has", `Subject-verb agreement: "have" → "has"`},
		{`\b(i|you|we|they)\s+has\b`, "${1} have", `Subject-verb agreement: "has" → "have"`},

		// Common contractions and typos
		{`\byour\s+(going|coming|doing|making|taking)\b`, "you're ${1}", `Contraction: "your" → "you're"`},
		{`\bits\s+([a-z])`, "it's ${1}", `Contraction: "its" → "it's"`},
		{`\btheir\s+(going|coming|doing)\b`, "they're ${1}", `Contraction: "their" → "they're"`},
		{`\bthere\s+(is|are)\b`, "there ${1}", `Phrase: "there is/are" is correct`},

		// Common spelling mistakes
		{`\brecieve\b`, "receive", `Spelling: "recieve" → "receive"`},
		{`\boccured\b`, "occurred", `Spelling: "occured" → "occurred"`},
		{`\bseperate\b`, "separate", `Spelling: "seperate" → "separate"`},
		{`\bneccessary\b`, "necessary", `Spelling: "neccessary" → "necessary"`},
		{`\bdefinately\b`, "definitely", `Spelling: "definately" → "definitely"`},
		{`\baccross\b`, "across", `Spelling: "accross" → "across"`},
		{`\bwether\b`, "whether", `Spelling: "wether" → "whether"`},

		// Common phrase errors
		{`\bwould\s+of\b`, "would have", `Grammar: "would of" → "would have"`},
		{`\bcould\s+of\b`, "could have", `Grammar: "could of" → "could have"`},
		{`\bshould\s+of\b`, "should have", `Grammar: "should of" → "should have"`},
		{`\blot\s+of\b`, "lot of", `Grammar: correct usage of "lot of"`},

		// Double spaces
		{`  +`, " ", "Spacing: remove extra spaces"},
	}
}

// compiledRule pairs a rule with its compiled case-insensitive expression.
type compiledRule struct {
	re          *regexp.Regexp
	replacement string
	reason      string
}

// compileRules compiles the rule table, skipping malformed patterns so a bad
// rule never aborts correction of the remaining rules.
func compileRules(rules []Rule, logger *slog.Logger) []compiledRule {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping malformed correction rule", "pattern", r.Pattern, "error", err)
			}
			continue
		}
		compiled = append(compiled, compiledRule{re: re, replacement: r.Replacement, reason: r.Reason})
	}
	return compiled
}
