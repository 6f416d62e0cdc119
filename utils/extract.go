package utils

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultLabelWindow is how many characters after a label a value may
	// still be attributed to it.
	DefaultLabelWindow = 80
	// DefaultTokenWindow is how many tokens after a keyword are collected
	// as its value.
	DefaultTokenWindow = 8
)

// ExtractNearLabel finds the first occurrence of the first matching label
// phrase and captures a value of the given shape within window characters
// after it. Labels are tried in caller order, so more specific phrases must
// precede generic ones. Matching is case-insensitive and the gap does not
// cross line breaks. Returns "" when no label occurs or no value follows.
func ExtractNearLabel(text string, labels []string, valuePattern string, window int) string {
	if window <= 0 {
		window = DefaultLabelWindow
	}
	for _, label := range labels {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(label) +
			`.{0,` + strconv.Itoa(window) + `}?(` + valuePattern + `)`)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			if value := strings.TrimSpace(m[1]); value != "" {
				return value
			}
		}
	}
	return ""
}

// ExtractAfterKeywords splits the text on whitespace and anchors on the
// first token equal to any keyword, then collects up to maxWords following
// tokens. Tokens that are themselves keywords are skipped so a later
// occurrence is not swallowed into the value. The joined value counts only
// if it is longer than two characters; only the first anchor is ever used.
func ExtractAfterKeywords(text string, keywords []string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultTokenWindow
	}

	keywordSet := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		keywordSet[k] = true
	}

	tokens := strings.Fields(text)
	for i, token := range tokens {
		if !keywordSet[token] {
			continue
		}
		var values []string
		for j := i + 1; j <= i+maxWords && j < len(tokens); j++ {
			if !keywordSet[tokens[j]] {
				values = append(values, tokens[j])
			}
		}
		joined := strings.Join(values, " ")
		if len(joined) > 2 {
			return joined
		}
		return ""
	}
	return ""
}
