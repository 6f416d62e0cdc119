package utils

import (
	"regexp"
	"strings"
)

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	spaceRuns   = regexp.MustCompile(`[ ]{2,}`)
)

// Rupee symbol as Tesseract tends to misrender it (raw UTF-8 bytes read as
// Latin-1), plus the symbol itself and the dollar sign.
var currencyArtifacts = strings.NewReplacer("â‚¹", "", "₹", "", "$", "")

// NormalizeText canonicalizes a raw OCR transcript for pattern matching:
// carriage returns become newlines, runs of newlines and spaces collapse to
// one, and the whole string is lowercased. Normalizing twice is a no-op.
func NormalizeText(raw string) string {
	text := strings.ReplaceAll(raw, "\r", "\n")
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.ToLower(text)
}

// NormalizeLifeText is the life-policy variant of NormalizeText. Life
// documents print the sum assured with a currency symbol that OCR mangles,
// so the artifacts are stripped before normalization.
func NormalizeLifeText(raw string) string {
	return NormalizeText(currencyArtifacts.Replace(raw))
}
