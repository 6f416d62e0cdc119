package utils

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	ocrDigitConfusions = strings.NewReplacer("O", "0", "o", "0", "S", "5", "s", "5")
	nonCurrencyChars   = regexp.MustCompile(`[^0-9.,]`)
	standaloneAmounts  = regexp.MustCompile(`\b[0-9.,]{5,}\b`)
	standaloneDigits   = regexp.MustCompile(`\b[0-9]{5,}\b`)
	nonDigits          = regexp.MustCompile(`[^0-9]`)
)

// ParseSmartCurrency repairs common OCR confusions in a currency string and
// parses it to a non-negative integer amount. Letters O and S are read back
// as the digits they were misread from, then everything but digits, periods
// and commas is dropped. More than one period means the periods are
// thousands separators and are removed; otherwise the commas are. Returns 0
// for empty or unparsable input, never a negative or fractional value.
func ParseSmartCurrency(raw string) int {
	if raw == "" {
		return 0
	}

	clean := ocrDigitConfusions.Replace(raw)
	clean = nonCurrencyChars.ReplaceAllString(clean, "")

	if strings.Count(clean, ".") > 1 {
		clean = strings.ReplaceAll(clean, ".", "")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return leadingInt(clean)
}

// ParseDigits strips everything but digits and parses the remainder.
// Returns 0 when nothing is left.
func ParseDigits(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(raw, ""))
	if err != nil {
		return 0
	}
	return n
}

// StandaloneAmounts collects every standalone numeric token of at least five
// characters, runs each through ParseSmartCurrency and returns the results
// sorted descending. Used by the home parser when no labelled sum was found.
func StandaloneAmounts(text string) []int {
	var amounts []int
	for _, token := range standaloneAmounts.FindAllString(text, -1) {
		amounts = append(amounts, ParseSmartCurrency(token))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(amounts)))
	return amounts
}

// LargestStandaloneNumber returns the largest plain digit run of at least
// five digits anywhere in the text, or 0 when there is none. Used by the
// life parser as a last resort for the sum assured.
func LargestStandaloneNumber(text string) int {
	largest := 0
	for _, token := range standaloneDigits.FindAllString(text, -1) {
		if n := ParseDigits(token); n > largest {
			largest = n
		}
	}
	return largest
}

// leadingInt parses the leading digit run of s, mirroring how a lenient
// integer parse truncates at the first non-digit (a kept decimal point
// drops the fraction).
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
