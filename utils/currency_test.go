package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSmartCurrency(t *testing.T) {
	assert.Equal(t, 0, ParseSmartCurrency(""))
	assert.Equal(t, 0, ParseSmartCurrency("garbled link text"))

	// o/s are treated as misread digits even in plain words
	assert.Equal(t, 5, ParseSmartCurrency("no digits here"))

	// Plain digit strings parse as-is
	assert.Equal(t, 500000, ParseSmartCurrency("500000"))

	// OCR letter confusions repaired before parsing
	assert.Equal(t, 100000, ParseSmartCurrency("1O0,000"))
	assert.Equal(t, 55000, ParseSmartCurrency("SS000"))

	// Indian-style grouping with commas and a decimal tail
	assert.Equal(t, 500000, ParseSmartCurrency("5,00,000.00"))

	// Multiple periods mean the periods are thousands separators
	assert.Equal(t, 250000, ParseSmartCurrency("2.5.0.000"))
	assert.Equal(t, 1500000, ParseSmartCurrency("1.500.000"))

	// A single period is a genuine decimal point; the fraction drops
	assert.Equal(t, 2500, ParseSmartCurrency("2,500.75"))
}

func TestParseDigits(t *testing.T) {
	assert.Equal(t, 0, ParseDigits(""))
	assert.Equal(t, 0, ParseDigits("rs."))
	assert.Equal(t, 500000, ParseDigits("rs 5,00,000"))
}

func TestStandaloneAmounts(t *testing.T) {
	text := "covers dwelling 784512 and belongings 1,20,045 ref 99"

	amounts := StandaloneAmounts(text)

	assert.Equal(t, []int{784512, 120045}, amounts)
}

func TestStandaloneAmountsIgnoresShortAndEmbeddedNumbers(t *testing.T) {
	// Digit runs inside identifiers must not count as amounts
	assert.Empty(t, StandaloneAmounts("policy hm12345 issued 2024"))
}

func TestLargestStandaloneNumber(t *testing.T) {
	assert.Equal(t, 500000, LargestStandaloneNumber("premium 25000 cover 500000"))
	assert.Equal(t, 0, LargestStandaloneNumber("no large figures 999"))
}
